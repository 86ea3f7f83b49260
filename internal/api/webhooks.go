package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"webhooks-api/internal/auth"
	"webhooks-api/internal/httperr"
	"webhooks-api/internal/model"
)

var ErrWebhookNotFound = httperr.New(http.StatusNotFound, "Webhook not found")

// webhookID parses the {id} path parameter.
func webhookID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, httperr.PathParam("id", raw, "uuid_parsing", "Input should be a valid UUID")
	}
	return id, nil
}

// @Summary Retrieve webhooks
// @Tags webhooks
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} model.WebhookList
// @Router /webhooks/ [get]
func (a *API) ListWebhooks(w http.ResponseWriter, r *http.Request) {
	httperr.WriteJSON(w, http.StatusOK, model.WebhookList{Webhooks: []model.Webhook{}})
}

// @Summary Get webhook by ID
// @Tags webhooks
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Webhook UUID"
// @Success 200 {object} model.Webhook
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /webhooks/{id} [get]
func (a *API) GetWebhook(w http.ResponseWriter, r *http.Request) {
	if _, err := webhookID(r); err != nil {
		httperr.Write(w, err)
		return
	}
	httperr.Write(w, ErrWebhookNotFound)
}

// @Summary Create new webhook
// @Tags webhooks
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} model.WebhookCreated
// @Router /webhooks/ [post]
func (a *API) CreateWebhook(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUser(r.Context())
	if user == nil {
		httperr.Write(w, auth.ErrNotAuthenticated)
		return
	}

	created := model.WebhookCreated{ID: uuid.New(), CreatedBy: user.ID}
	a.Logger.Debug("webhook id issued",
		zap.String("webhook_id", created.ID.String()),
		zap.String("user_id", user.ID.String()),
	)
	httperr.WriteJSON(w, http.StatusOK, created)
}

// @Summary Update a webhook
// @Tags webhooks
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Webhook UUID"
// @Success 200 {object} model.Webhook
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /webhooks/{id} [put]
func (a *API) UpdateWebhook(w http.ResponseWriter, r *http.Request) {
	if _, err := webhookID(r); err != nil {
		httperr.Write(w, err)
		return
	}
	httperr.Write(w, ErrWebhookNotFound)
}

// @Summary Delete a webhook
// @Tags webhooks
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Webhook UUID"
// @Success 200 {object} model.Message
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /webhooks/{id} [delete]
func (a *API) DeleteWebhook(w http.ResponseWriter, r *http.Request) {
	if _, err := webhookID(r); err != nil {
		httperr.Write(w, err)
		return
	}
	httperr.Write(w, ErrWebhookNotFound)
}
