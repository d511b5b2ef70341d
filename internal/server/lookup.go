package server

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/qdm12/ip-locator/internal/lookup"
	"github.com/qdm12/ip-locator/internal/view"
	"github.com/qdm12/ip-locator/pkg/geolocation"
	"github.com/qdm12/ip-locator/pkg/ipaddress"
	"github.com/qdm12/ip-locator/pkg/publicip"
)

type lookupResponse struct {
	Record geolocation.Record `json:"record"`
	View   view.ViewModel     `json:"view"`
}

func (h *handlers) lookup(w http.ResponseWriter, r *http.Request) {
	address, err := url.PathUnescape(chi.URLParam(r, "ip"))
	if err != nil {
		httpError(w, http.StatusBadRequest, lookup.MessageInvalidAddress)
		return
	}
	h.lookupAndRespond(w, r, address)
}

func (h *handlers) lookupAndRespond(w http.ResponseWriter, r *http.Request, address string) {
	record, err := h.service.Lookup(r.Context(), address)
	switch {
	case errors.Is(err, ipaddress.ErrInvalidAddress):
		httpError(w, http.StatusBadRequest, lookup.MessageInvalidAddress)
		return
	case err != nil:
		h.logger.Warn("looking up " + address + ": " + err.Error())
		httpError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, lookupResponse{
		Record: record,
		View:   view.Project(record),
	})
}

type selfResponse struct {
	IP string `json:"ip"`
}

func (h *handlers) self(w http.ResponseWriter, r *http.Request) {
	address, err := callerAddress(r)
	if err != nil {
		h.logger.Warn(err.Error())
		httpError(w, http.StatusBadRequest, publicip.ErrNoIPFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, selfResponse{IP: address})
}

func (h *handlers) selfLookup(w http.ResponseWriter, r *http.Request) {
	address, err := callerAddress(r)
	if err != nil {
		h.logger.Warn(err.Error())
		httpError(w, http.StatusBadRequest, publicip.ErrNoIPFound.Error())
		return
	}
	h.lookupAndRespond(w, r, address)
}
