package handler

import (
	"context"
	"net/http"

	"github.com/osse101/DeluxeGrabber_Go/internal/config"
	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/grabber"
	"github.com/osse101/DeluxeGrabber_Go/internal/logger"
	"github.com/osse101/DeluxeGrabber_Go/internal/worker"
	"github.com/osse101/DeluxeGrabber_Go/internal/world"
)

// Executor runs a job on the simulation goroutine and waits for it
type Executor interface {
	Do(ctx context.Context, job worker.Job) error
}

// MovePlayerRequest moves the actor to a location tile
type MovePlayerRequest struct {
	Location string `json:"location" validate:"required,max=64,locname"`
	X        int    `json:"x" validate:"gte=0,lte=4096"`
	Y        int    `json:"y" validate:"gte=0,lte=4096"`
}

// ObjectRequest is one object to place. A zero item id is looked up by name.
type ObjectRequest struct {
	X       int            `json:"x" validate:"gte=0,lte=4096"`
	Y       int            `json:"y" validate:"gte=0,lte=4096"`
	ItemID  int            `json:"item_id" validate:"gte=0"`
	Name    string         `json:"name" validate:"required,max=64"`
	Stack   int            `json:"stack" validate:"gte=0,lte=999"`
	Quality domain.Quality `json:"quality" validate:"oneof=0 1 2 4"`
	Big     bool           `json:"big"`
	Forage  bool           `json:"forage"`
}

// PlaceObjectsRequest places objects into one location
type PlaceObjectsRequest struct {
	Objects []ObjectRequest `json:"objects" validate:"required,min=1,max=100,dive"`
}

// PlaceObjectsResponse lists what was placed
type PlaceObjectsResponse struct {
	Location string              `json:"location"`
	Added    []AddedObjectResult `json:"added"`
}

// AddedObjectResult is one placed object
type AddedObjectResult struct {
	Tile   domain.TileCoord `json:"tile"`
	ItemID int              `json:"item_id"`
	Name   string           `json:"name"`
}

// GrabberHandlers serves the collection engine. Mutating requests go through
// the executor so they never interleave with a scheduled day boundary.
type GrabberHandlers struct {
	svc  grabber.Service
	exec Executor
}

// NewGrabberHandlers creates the handlers
func NewGrabberHandlers(svc grabber.Service, exec Executor) *GrabberHandlers {
	return &GrabberHandlers{svc: svc, exec: exec}
}

// HandleGetConfig returns the grabber settings snapshot
// @Summary Get grabber settings
// @Description Returns the current collection toggles and global collector target
// @Tags grabber
// @Produce json
// @Success 200 {object} config.GrabberSettings
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/config [get]
// @Security ApiKeyAuth
func (h *GrabberHandlers) HandleGetConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, h.svc.Settings())
	}
}

// HandleGetPlayerLocation reports the actor's map and tile
// @Summary Get player location
// @Tags player
// @Produce json
// @Success 200 {object} grabber.PlayerLocation
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/player/location [get]
// @Security ApiKeyAuth
func (h *GrabberHandlers) HandleGetPlayerLocation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, h.svc.PrintLocation(r.Context()))
	}
}

// HandleGetPlayer returns the actor's skill levels, traits and position
// @Summary Get player
// @Description Returns experience, skill levels, traits, luck and position
// @Tags player
// @Produce json
// @Success 200 {object} farmer.Snapshot
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/player [get]
// @Security ApiKeyAuth
func (h *GrabberHandlers) HandleGetPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, h.svc.Player(r.Context()))
	}
}

// HandleMovePlayer moves the actor
// @Summary Move player
// @Description Moves the actor to a tile of a known location
// @Tags player
// @Accept json
// @Produce json
// @Param request body MovePlayerRequest true "Target location and tile"
// @Success 200 {object} grabber.PlayerLocation
// @Failure 400 {object} ValidationErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Unknown location"
// @Router /api/v1/player/location [put]
// @Security ApiKeyAuth
func (h *GrabberHandlers) HandleMovePlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MovePlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpMovePlayer); err != nil {
			return
		}
		LogRequestFields(logger.FromContext(r.Context()), "location", req.Location, "x", req.X, "y", req.Y)

		var moved grabber.PlayerLocation
		err := h.exec.Do(r.Context(), worker.JobFunc(func(ctx context.Context) error {
			var err error
			moved, err = h.svc.MovePlayer(ctx, req.Location, domain.Tile(req.X, req.Y))
			return err
		}))
		if err != nil {
			respondServiceError(w, r, OpMovePlayer, err)
			return
		}
		respondJSON(w, http.StatusOK, moved)
	}
}

// HandleSetForagerLocation saves the actor's tile as the global collector target
// @Summary Set forager location
// @Description Persists the actor's current map and tile as the global collector target
// @Tags grabber
// @Produce json
// @Success 200 {object} DataResponse{data=config.GrabberSettings}
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/forager [post]
// @Security ApiKeyAuth
func (h *GrabberHandlers) HandleSetForagerLocation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings config.GrabberSettings
		err := h.exec.Do(r.Context(), worker.JobFunc(func(ctx context.Context) error {
			var err error
			settings, err = h.svc.SetForagerLocation(ctx)
			return err
		}))
		if err != nil {
			respondServiceError(w, r, OpSetForagerLocation, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgForagerLocationSet, Data: settings})
	}
}

// HandleAdvanceDay advances the clock and returns the day report
// @Summary Advance day
// @Description Moves the clock forward one day and runs the building, crop and world passes
// @Tags grabber
// @Produce json
// @Success 200 {object} DataResponse{data=grabber.DayReport}
// @Failure 503 {object} ErrorResponse "Shutting down"
// @Router /api/v1/day [post]
// @Security ApiKeyAuth
func (h *GrabberHandlers) HandleAdvanceDay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var report *grabber.DayReport
		err := h.exec.Do(r.Context(), worker.NewDayJob(func(ctx context.Context) error {
			var err error
			report, err = h.svc.AdvanceDay(ctx)
			return err
		}))
		if err != nil {
			respondServiceError(w, r, OpAdvanceDay, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgDayAdvanced, Data: report})
	}
}

// HandlePlaceObjects places objects into a location and triggers the
// objects-added notification
// @Summary Place objects
// @Description Places objects on free tiles; truffles on the farm are grabbed immediately
// @Tags world
// @Accept json
// @Produce json
// @Param name path string true "Location name"
// @Param request body PlaceObjectsRequest true "Objects to place"
// @Success 201 {object} DataResponse{data=PlaceObjectsResponse}
// @Failure 400 {object} ErrorResponse "Invalid request or occupied tile"
// @Failure 404 {object} ErrorResponse "Unknown location or item"
// @Router /api/v1/locations/{name}/objects [post]
// @Security ApiKeyAuth
func (h *GrabberHandlers) HandlePlaceObjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		location, ok := GetPathParam(r, w, "name", "required,max=64,locname")
		if !ok {
			return
		}
		var req PlaceObjectsRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpPlaceObjects); err != nil {
			return
		}

		fixtures := make([]world.ObjectFixture, len(req.Objects))
		for i, o := range req.Objects {
			fixtures[i] = world.ObjectFixture{
				X: o.X, Y: o.Y, ItemID: o.ItemID, Name: o.Name, Stack: o.Stack,
				Quality: o.Quality, Big: o.Big, Forage: o.Forage,
			}
		}

		var added []AddedObjectResult
		err := h.exec.Do(r.Context(), worker.JobFunc(func(ctx context.Context) error {
			placed, err := h.svc.PlaceObjects(ctx, location, fixtures)
			for _, p := range placed {
				added = append(added, AddedObjectResult{Tile: p.Tile, ItemID: p.ItemID, Name: p.Name})
			}
			return err
		}))
		if err != nil {
			respondServiceError(w, r, OpPlaceObjects, err)
			return
		}
		respondJSON(w, http.StatusCreated, DataResponse{
			Message: MsgObjectsPlaced,
			Data:    PlaceObjectsResponse{Location: location, Added: added},
		})
	}
}

// HandleGetCollectors lists every collector with its contents
// @Summary List collectors
// @Tags world
// @Produce json
// @Success 200 {array} grabber.CollectorView
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/collectors [get]
// @Security ApiKeyAuth
func (h *GrabberHandlers) HandleGetCollectors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, h.svc.Collectors(r.Context()))
	}
}
