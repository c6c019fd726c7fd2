package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cory-johannsen/paperdoll/internal/game/inventory"
	"github.com/cory-johannsen/paperdoll/internal/game/session"
)

// conflictBody is the 409 payload of a body slot conflict.
type conflictBody struct {
	Error       string                 `json:"error"`
	Conflict    conflictInfo           `json:"conflict"`
	Replacement *inventory.Replacement `json:"replacement,omitempty"`
}

type conflictInfo struct {
	ItemID        string `json:"itemId"`
	Slot          string `json:"slot"`
	ConflictIndex int    `json:"conflictIndex"`
	ConflictItem  string `json:"conflictItem"`
}

type capacityBody struct {
	Error     string         `json:"error"`
	Area      inventory.Area `json:"area"`
	Needed    int            `json:"needed"`
	Available int            `json:"available"`
}

// statusOf maps a domain error onto an HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, session.ErrInvalidSlot):
		return http.StatusBadRequest
	case errors.Is(err, inventory.ErrSetNotFound),
		errors.Is(err, session.ErrSaveNotFound):
		return http.StatusNotFound
	case errors.Is(err, inventory.ErrSlotOccupied),
		errors.Is(err, inventory.ErrEquipmentFull),
		errors.Is(err, inventory.ErrInventoryFull),
		errors.Is(err, inventory.ErrStaleReplacement):
		return http.StatusConflict
	case errors.Is(err, inventory.ErrNotWearable),
		errors.Is(err, inventory.ErrSameItem),
		errors.Is(err, inventory.ErrItemMissing),
		errors.Is(err, inventory.ErrInvalidLocation),
		errors.Is(err, inventory.ErrNotUsable),
		errors.Is(err, inventory.ErrNoItems):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// writeError renders err. Conflicts carry the pending replacement so a
// client can confirm it with POST /replace.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := statusOf(err)

	var conflict *inventory.ConflictError
	if errors.As(err, &conflict) {
		c.AbortWithStatusJSON(status, conflictBody{
			Error: err.Error(),
			Conflict: conflictInfo{
				ItemID:        conflict.ItemID,
				Slot:          string(conflict.Slot),
				ConflictIndex: conflict.ConflictIndex,
				ConflictItem:  conflict.ConflictItem,
			},
			Replacement: conflict.Replacement,
		})
		return
	}
	var capacity *inventory.CapacityError
	if errors.As(err, &capacity) {
		c.AbortWithStatusJSON(status, capacityBody{
			Error:     err.Error(),
			Area:      capacity.Area,
			Needed:    capacity.Needed,
			Available: capacity.Available,
		})
		return
	}
	if status == http.StatusInternalServerError {
		c.AbortWithStatusJSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}
