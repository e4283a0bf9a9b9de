package handlers

import (
	"encoding/json"
	"net/http"

	"insighthub/internal/middleware"
	"insighthub/internal/service"
)

type UpdateProfileRequest struct {
	FirstName         string `json:"firstName" validate:"required,max=100"`
	LastName          string `json:"lastName" validate:"required,max=100"`
	Username          string `json:"username" validate:"required,max=100"`
	Email             string `json:"email" validate:"required,email"`
	Skill             string `json:"skill" validate:"max=100"`
	Experience        string `json:"experience" validate:"max=100"`
	Education         string `json:"education" validate:"max=100"`
	Occupation        string `json:"occupation" validate:"max=100"`
	Location          string `json:"location" validate:"max=100"`
	Profession        string `json:"profession" validate:"max=100"`
	Website           string `json:"website" validate:"omitempty,url,max=150"`
	LinkedIn          string `json:"linkedin" validate:"max=100"`
	GitHub            string `json:"github" validate:"max=100"`
	Twitter           string `json:"twitter" validate:"max=100"`
	Facebook          string `json:"facebook" validate:"max=100"`
	Instagram         string `json:"instagram" validate:"max=100"`
	Bio               string `json:"bio"`
	ProfileVisibility bool   `json:"profileVisibility"`
}

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	viewerID := int64(0)
	if actor, ok := middleware.ActorFromContext(r.Context()); ok {
		viewerID = actor.ID
	}

	profile, err := h.ProfileService.GetProfile(r.Context(), userID, viewerID)
	if err != nil {
		h.writeAppError(w, err)
		return
	}

	WriteJSON(w, profile, http.StatusOK)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "invalid profile data", http.StatusBadRequest)
		return
	}

	err := h.ProfileService.UpdateProfile(r.Context(), actor.ID, service.UpdateProfileRequest{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Username:          req.Username,
		Email:             req.Email,
		Skill:             req.Skill,
		Experience:        req.Experience,
		Education:         req.Education,
		Occupation:        req.Occupation,
		Location:          req.Location,
		Profession:        req.Profession,
		Website:           req.Website,
		LinkedIn:          req.LinkedIn,
		GitHub:            req.GitHub,
		Twitter:           req.Twitter,
		Facebook:          req.Facebook,
		Instagram:         req.Instagram,
		Bio:               req.Bio,
		ProfileVisibility: req.ProfileVisibility,
	})
	if err != nil {
		h.writeAppError(w, err)
		return
	}

	WriteJSON(w, map[string]string{"message": "profile updated"}, http.StatusOK)
}

func (h *Handlers) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "uploaded file is too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("profilePic")
	if err != nil {
		WriteError(w, "no file selected", http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename, err := h.ProfileService.UploadAvatar(r.Context(), actor.ID, header.Filename, file)
	if err != nil {
		h.writeAppError(w, err)
		return
	}

	WriteJSON(w, map[string]string{"profileImage": filename}, http.StatusOK)
}
