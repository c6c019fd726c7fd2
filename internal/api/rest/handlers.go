package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cory-johannsen/paperdoll/internal/game/inventory"
	"github.com/cory-johannsen/paperdoll/internal/game/presentation"
	"github.com/cory-johannsen/paperdoll/internal/game/session"
)

// HealthFunc reports whether the storage backend is reachable.
type HealthFunc func(ctx context.Context) error

// Handler serves the save endpoints. Every mutating handler runs inside the
// session lock and then writes the save through the Manager.
type Handler struct {
	sessions *session.Manager
	health   HealthFunc
	logger   *zap.Logger
}

// NewHandler creates a Handler. A nil health reports healthy.
//
// Precondition: sessions and logger non-nil.
func NewHandler(sessions *session.Manager, health HealthFunc, logger *zap.Logger) *Handler {
	return &Handler{sessions: sessions, health: health, logger: logger}
}

type mutationResponse struct {
	State    *inventory.State `json:"state"`
	Result   any              `json:"result,omitempty"`
	Reaction string           `json:"reaction,omitempty"`
}

type presentationResponse struct {
	Result    presentation.Result           `json:"result"`
	Outfit    presentation.OutfitAssessment `json:"outfit"`
	Vibes     []presentation.Vibe           `json:"vibes"`
	VibesText string                        `json:"vibesText"`
	ReadText  string                        `json:"readText"`
	Cache     presentation.CacheStats       `json:"cache"`
}

type previewResponse struct {
	Set    inventory.ItemSet   `json:"set"`
	Result presentation.Result `json:"result"`
}

type moveRequest struct {
	From inventory.Location `json:"from"`
	To   inventory.Location `json:"to"`
}

type replaceRequest struct {
	Replacement *inventory.Replacement `json:"replacement"`
}

type nameRequest struct {
	Name string `json:"name"`
}

func (h *Handler) open(c *gin.Context) (*session.Session, bool) {
	s, err := h.sessions.Open(c.Request.Context(), c.Param("slot"))
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	return s, true
}

// read renders whatever fn builds under the session lock.
func (h *Handler) read(c *gin.Context, fn func(s *session.Session) (any, error)) {
	s, ok := h.open(c)
	if !ok {
		return
	}
	var body any
	err := s.Do(func(s *session.Session) error {
		var err error
		body, err = fn(s)
		return err
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// mutate runs fn under the session lock and autosaves on success.
func (h *Handler) mutate(c *gin.Context, fn func(s *session.Session) (any, error)) {
	s, ok := h.open(c)
	if !ok {
		return
	}
	var resp mutationResponse
	err := s.Do(func(s *session.Session) error {
		result, err := fn(s)
		if err != nil {
			return err
		}
		resp = mutationResponse{
			State:    s.Store().State().Clone(),
			Result:   result,
			Reaction: s.Reaction(),
		}
		return nil
	})
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.sessions.Save(c.Request.Context(), s.Slot()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(c *gin.Context) {
	if h.health != nil {
		if err := h.health(c.Request.Context()); err != nil {
			h.logger.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// State handles GET /api/saves/:slot/state.
func (h *Handler) State(c *gin.Context) {
	h.read(c, func(s *session.Session) (any, error) {
		return s.Store().State().Clone(), nil
	})
}

// Presentation handles GET /api/saves/:slot/presentation. The public query
// parameter moves the character in or out of public before scoring.
func (h *Handler) Presentation(c *gin.Context) {
	var public *bool
	if raw, ok := c.GetQuery("public"); ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, "public must be a boolean")
			return
		}
		public = &v
	}
	h.read(c, func(s *session.Session) (any, error) {
		if public != nil {
			s.SetPublic(*public)
		}
		equipped := []string(s.Store().State().Equipped)
		r := s.Presentation()
		vibes := s.Engine().Vibes(equipped)
		return presentationResponse{
			Result:    r,
			Outfit:    s.Engine().Outfit(equipped),
			Vibes:     vibes,
			VibesText: presentation.VibesText(vibes),
			ReadText:  presentation.ResultText(r, nil),
			Cache:     s.Cache().Stats(),
		}, nil
	})
}

// Move handles POST /api/saves/:slot/move.
func (h *Handler) Move(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	h.mutate(c, func(s *session.Session) (any, error) {
		return nil, s.Store().MoveBetween(req.From, req.To)
	})
}

// Replace handles POST /api/saves/:slot/replace, confirming a replacement
// returned by an earlier 409.
func (h *Handler) Replace(c *gin.Context) {
	var req replaceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Replacement == nil {
		badRequest(c, "replacement required")
		return
	}
	h.mutate(c, func(s *session.Session) (any, error) {
		return nil, s.Store().ApplyReplace(*req.Replacement)
	})
}

// Item handles POST /api/saves/:slot/items/:action.
func (h *Handler) Item(c *gin.Context) {
	var loc inventory.Location
	if err := c.ShouldBindJSON(&loc); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	var op func(s *session.Session) (any, error)
	switch c.Param("action") {
	case "wear":
		op = func(s *session.Session) (any, error) { return nil, s.Store().Wear(loc) }
	case "use":
		op = func(s *session.Session) (any, error) {
			res, err := s.Use(loc)
			if err != nil {
				return nil, err
			}
			return res, nil
		}
	case "to-wardrobe":
		op = func(s *session.Session) (any, error) { return nil, s.Store().SendToWardrobe(loc) }
	case "to-inventory":
		op = func(s *session.Session) (any, error) { return nil, s.Store().SendToInventory(loc) }
	default:
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown item action"})
		return
	}
	h.mutate(c, op)
}

// Unequip handles POST /api/saves/:slot/unequip/:index. With
// ?fallback=wardrobe the item goes to the wardrobe instead of the inventory.
func (h *Handler) Unequip(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		badRequest(c, "index must be an integer")
		return
	}
	toWardrobe := c.Query("fallback") == "wardrobe"
	h.mutate(c, func(s *session.Session) (any, error) {
		if toWardrobe {
			return nil, s.Store().RemoveToWardrobe(index)
		}
		_, err := s.Store().Remove(inventory.Location{Area: inventory.AreaEquipped, Index: index})
		return nil, err
	})
}

var bulkActions = map[string]func(st *inventory.Store) (any, error){
	"cleanup-equipped":  func(st *inventory.Store) (any, error) { return nil, st.CleanUpEquipped() },
	"cleanup-inventory": func(st *inventory.Store) (any, error) { return nil, st.CleanUpInventory() },
	"cleanup-wardrobe":  func(st *inventory.Store) (any, error) { return nil, st.CleanUpWardrobe() },
	"unequip-all":       func(st *inventory.Store) (any, error) { return nil, st.UnequipAll() },
	"unequip-all-wardrobe": func(st *inventory.Store) (any, error) {
		return nil, st.UnequipAllToWardrobe()
	},
	"inventory-to-wardrobe": func(st *inventory.Store) (any, error) {
		n, err := st.SendInventoryToWardrobe()
		return gin.H{"moved": n}, err
	},
	"wardrobe-to-inventory": func(st *inventory.Store) (any, error) {
		n, err := st.SendWardrobeToInventory()
		return gin.H{"moved": n}, err
	},
}

// Bulk handles POST /api/saves/:slot/bulk/:action.
func (h *Handler) Bulk(c *gin.Context) {
	action, ok := bulkActions[c.Param("action")]
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown bulk action"})
		return
	}
	h.mutate(c, func(s *session.Session) (any, error) {
		return action(s.Store())
	})
}

// SetFilter handles PUT /api/saves/:slot/filter.
func (h *Handler) SetFilter(c *gin.Context) {
	var f inventory.Filter
	if err := c.ShouldBindJSON(&f); err != nil {
		badRequest(c, "invalid filter")
		return
	}
	h.mutate(c, func(s *session.Session) (any, error) {
		return nil, s.Store().SetFilter(f)
	})
}

// ClearFilter handles DELETE /api/saves/:slot/filter.
func (h *Handler) ClearFilter(c *gin.Context) {
	h.mutate(c, func(s *session.Session) (any, error) {
		return nil, s.Store().ClearFilter()
	})
}

// CreateSet handles POST /api/saves/:slot/sets.
func (h *Handler) CreateSet(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	h.mutate(c, func(s *session.Session) (any, error) {
		set, err := s.Store().CreateSet(req.Name)
		if err != nil {
			return nil, err
		}
		return set, nil
	})
}

// RenameSet handles PATCH /api/saves/:slot/sets/:id.
func (h *Handler) RenameSet(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	h.mutate(c, func(s *session.Session) (any, error) {
		return nil, s.Store().RenameSet(c.Param("id"), req.Name)
	})
}

// RemoveSet handles DELETE /api/saves/:slot/sets/:id.
func (h *Handler) RemoveSet(c *gin.Context) {
	h.mutate(c, func(s *session.Session) (any, error) {
		return nil, s.Store().RemoveSet(c.Param("id"))
	})
}

// ApplySet handles POST /api/saves/:slot/sets/:id/apply.
func (h *Handler) ApplySet(c *gin.Context) {
	h.mutate(c, func(s *session.Session) (any, error) {
		report, err := s.Store().ApplySet(c.Param("id"))
		if err != nil {
			return nil, err
		}
		return report, nil
	})
}

// PreviewSet handles GET /api/saves/:slot/sets/:id/preview: the score the
// set would get under the current context, without wearing it.
func (h *Handler) PreviewSet(c *gin.Context) {
	h.read(c, func(s *session.Session) (any, error) {
		set, ok := s.Store().Set(c.Param("id"))
		if !ok {
			return nil, fmt.Errorf("%w: %q", inventory.ErrSetNotFound, c.Param("id"))
		}
		return previewResponse{Set: set, Result: s.Engine().Evaluate(set.Items, s.Context())}, nil
	})
}
