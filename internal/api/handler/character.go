package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Tony1885/tonyWoW/internal/api/respond"
	"github.com/Tony1885/tonyWoW/internal/cache"
	"github.com/Tony1885/tonyWoW/internal/derive"
	"github.com/Tony1885/tonyWoW/internal/meta"
	"github.com/Tony1885/tonyWoW/internal/roster"
	"github.com/Tony1885/tonyWoW/internal/wow"
)

// CharacterResponse bundles the resolved profile with its derived view.
type CharacterResponse struct {
	Profile *wow.CharacterProfile `json:"profile"`
	View    derive.View           `json:"view"`
}

// GetCharacter resolves a character and returns its profile plus derived
// presentation values.
// @Summary Get character profile
// @Description Resolves a (region, realm, name) triple against Raider.io and returns the typed profile with derived view values (score tier, rank rows, link categories, keystone counts, color keys). Not-found and provider-down both map to 404.
// @Tags characters
// @Produce json
// @Param region path string true "Region" example(eu)
// @Param realm path string true "Realm slug" example(ysondre)
// @Param name path string true "Character name, percent-encoding optional" example(Moussman)
// @Success 200 {object} CharacterResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /characters/{region}/{realm}/{name} [get]
func (h *Handler) GetCharacter(w http.ResponseWriter, r *http.Request) {
	profile, cached, ok := h.resolve(w, r)
	if !ok {
		return
	}

	data, err := json.Marshal(CharacterResponse{
		Profile: profile,
		View:    h.deriver.View(profile),
	})
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_FAILED", "Failed to encode response")
		return
	}

	etag := cache.ComputeETag(data)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, h.cfg.CacheTTL, cached)
}

// GetCharacterLinks returns only the outbound link categories for a
// character's class.
// @Summary Get character link categories
// @Description Returns the base link categories plus the class-specific specialization guide links.
// @Tags characters
// @Produce json
// @Param region path string true "Region" example(eu)
// @Param realm path string true "Realm slug" example(ysondre)
// @Param name path string true "Character name" example(Moussman)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /characters/{region}/{realm}/{name}/links [get]
func (h *Handler) GetCharacterLinks(w http.ResponseWriter, r *http.Request) {
	profile, _, ok := h.resolve(w, r)
	if !ok {
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"class":           profile.Class,
		"link_categories": h.deriver.LinkCategories(profile.Class),
	})
}

// GetRoster returns the configured pinned characters.
// @Summary Get pinned roster
// @Description Returns the dashboard's statically configured characters for the selector view.
// @Tags roster
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /roster [get]
func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"characters": roster.Pinned(),
	})
}

// GetMetaTierList returns the curated seasonal spec tier list.
// @Summary Get meta tier list
// @Description Returns the hand-curated current-season spec tier list for the meta view.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /meta/tierlist [get]
func (h *Handler) GetMetaTierList(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"tiers": meta.TierList(),
	})
}

// resolve normalizes route params and looks the character up, writing the
// 400/404 responses itself. ok is false when a response was already written.
func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) (*wow.CharacterProfile, bool, bool) {
	id, err := wow.Normalize(
		chi.URLParam(r, "region"),
		chi.URLParam(r, "realm"),
		chi.URLParam(r, "name"),
	)
	if err != nil {
		if errors.Is(err, wow.ErrMissingIdentity) {
			respond.WriteError(w, http.StatusBadRequest, "MISSING_IDENTITY",
				"region, realm, and name are all required")
			return nil, false, false
		}
		respond.WriteError(w, http.StatusBadRequest, "INVALID_IDENTITY", err.Error())
		return nil, false, false
	}

	profile, cached := h.service.Lookup(r.Context(), id)
	if profile == nil {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND",
			"Character not found or provider unavailable")
		return nil, cached, false
	}
	return profile, cached, true
}
