package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/alkime/selector/internal/blend"
	"github.com/alkime/selector/internal/selector"
	"github.com/alkime/selector/pkg/collections"
	"github.com/gin-gonic/gin"
)

// stateResponse is the JSON view of a switch.
type stateResponse struct {
	Mode           int       `json:"mode"`
	ModeName       string    `json:"mode_name"`
	ModeCount      int       `json:"mode_count"`
	Names          []string  `json:"names"`
	Colors         []string  `json:"colors"`
	StartingAngles []float64 `json:"starting_angles"`
	SweepAngle     float64   `json:"sweep_angle"`
	KnobRotation   float64   `json:"knob_rotation"`
	Animating      bool      `json:"animating"`
}

func newStateResponse(snap selector.Snapshot) stateResponse {
	return stateResponse{
		Mode:           snap.Mode,
		ModeName:       snap.ModeName,
		ModeCount:      len(snap.Names),
		Names:          snap.Names,
		Colors:         collections.Apply(snap.Colors, blend.Hex),
		StartingAngles: snap.StartingAngles,
		SweepAngle:     snap.Sweep,
		KnobRotation:   snap.KnobRotation,
		Animating:      snap.Animating,
	}
}

// rotationResponse answers a selection with the requested turn and the new state.
type rotationResponse struct {
	From  float64       `json:"from"`
	To    float64       `json:"to"`
	Delta float64       `json:"delta"`
	State stateResponse `json:"state"`
}

type modeRequest struct {
	Mode *int `json:"mode" binding:"required"`
}

type colorsRequest struct {
	Colors []string `json:"colors"`
	Start  string   `json:"start"`
	End    string   `json:"end"`
}

type colorRequest struct {
	Color string `json:"color" binding:"required"`
}

type countRequest struct {
	Count *int `json:"count" binding:"required"`
}

// errInvalidColor marks colours that fail to parse.
var errInvalidColor = errors.New("invalid colour")

func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, selector.ErrInvalidConfiguration) || errors.Is(err, errInvalidColor) {
		status = http.StatusUnprocessableEntity
	}

	s.logger.Warn("request rejected", "path", c.FullPath(), "status", status, "error", err)
	c.JSON(status, gin.H{"error": err.Error()})
}

func (s *Server) respondState(c *gin.Context) {
	c.JSON(http.StatusOK, newStateResponse(s.sw.Snapshot()))
}

func (s *Server) respondRotation(c *gin.Context, rot selector.Rotation) {
	c.JSON(http.StatusOK, rotationResponse{
		From:  rot.From,
		To:    rot.To,
		Delta: rot.Delta,
		State: newStateResponse(s.sw.Snapshot()),
	})
}

func (s *Server) handleGetState(c *gin.Context) {
	s.respondState(c)
}

func (s *Server) handleSelectMode(c *gin.Context) {
	var req modeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, err)
		return
	}

	s.respondRotation(c, s.sw.SelectMode(*req.Mode))
}

func (s *Server) handleStep(step func(Switch) selector.Rotation) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.respondRotation(c, step(s.sw))
	}
}

func (s *Server) handleSetColors(c *gin.Context) {
	var req colorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, err)
		return
	}

	switch {
	case len(req.Colors) > 0:
		colors, at, err := collections.ApplyErr(req.Colors, blend.ParseHex)
		if err != nil {
			s.fail(c, fmt.Errorf("%w %d: %w", errInvalidColor, at, err))
			return
		}
		if err := s.sw.SetDialColors(colors); err != nil {
			s.fail(c, err)
			return
		}

	case req.Start != "" && req.End != "":
		start, err := blend.ParseHex(req.Start)
		if err != nil {
			s.fail(c, fmt.Errorf("%w: start: %w", errInvalidColor, err))
			return
		}
		end, err := blend.ParseHex(req.End)
		if err != nil {
			s.fail(c, fmt.Errorf("%w: end: %w", errInvalidColor, err))
			return
		}
		s.sw.SetDialColorRange(start, end)

	default:
		s.fail(c, errors.New("either colors or start and end are required"))
		return
	}

	s.respondState(c)
}

func (s *Server) handleSetColor(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		s.fail(c, fmt.Errorf("mode index: %w", err))
		return
	}

	var req colorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, err)
		return
	}

	col, err := blend.ParseHex(req.Color)
	if err != nil {
		s.fail(c, fmt.Errorf("%w: %w", errInvalidColor, err))
		return
	}

	if !s.sw.SetColorForMode(index, col) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no mode %d", index)})
		return
	}

	s.respondState(c)
}

func (s *Server) handleSetCount(c *gin.Context) {
	var req countRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, err)
		return
	}

	if err := s.sw.SetModeCount(*req.Count); err != nil {
		s.fail(c, err)
		return
	}

	s.respondState(c)
}
