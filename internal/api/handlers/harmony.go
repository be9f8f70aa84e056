package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Conceptual-Machines/magda-harmony/internal/config"
	"github.com/Conceptual-Machines/magda-harmony/internal/logger"
	"github.com/Conceptual-Machines/magda-harmony/internal/metrics"
	"github.com/Conceptual-Machines/magda-harmony/internal/models"
	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
	"github.com/gin-gonic/gin"
)

// Engine operations as they appear in spans, logs and CloudWatch dimensions
const (
	opKey            = "key"
	opResolve        = "resolve"
	opTransform      = "transform"
	opSubstitutions  = "substitutions"
	opScore          = "score"
	opLayout         = "layout"
	opCircleOfFifths = "circle_of_fifths"
	opPresets        = "presets"
)

// Engine errors that are the caller's fault
var clientErrors = []error{
	theory.ErrInvalidRomanNumeral,
	theory.ErrUnknownMode,
	theory.ErrInvalidChord,
	models.ErrUnknownOperation,
	models.ErrInvalidArgument,
}

type HarmonyHandler struct {
	cfg        *config.Config
	spans      *metrics.SentryMetrics
	cloudwatch *metrics.Client
	stats      *EngineStats
}

func NewHarmonyHandler(cfg *config.Config, cloudwatch *metrics.Client, stats *EngineStats) *HarmonyHandler {
	return &HarmonyHandler{
		cfg:        cfg,
		spans:      metrics.NewSentryMetrics(),
		cloudwatch: cloudwatch,
		stats:      stats,
	}
}

// GetKey returns the scale and diatonic triads of /keys/:root/:mode
func (h *HarmonyHandler) GetKey(c *gin.Context) {
	req := models.KeyRequest{Root: c.Param("root"), Mode: c.Param("mode")}
	key, err := h.resolveKey(req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.run(c, opKey, key.Name(), func() (any, error) {
		return models.NewKeyResponse(key), nil
	})
}

// GetCircleOfFifths returns the fixed circle of fifths
func (h *HarmonyHandler) GetCircleOfFifths(c *gin.Context) {
	h.run(c, opCircleOfFifths, "", func() (any, error) {
		return models.NewCircleOfFifthsResponse(), nil
	})
}

// ResolveChord turns one Roman numeral into a chord
func (h *HarmonyHandler) ResolveChord(c *gin.Context) {
	var req models.ResolveChordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	key, err := h.resolveKey(req.Key)
	if err != nil {
		respondError(c, err)
		return
	}

	h.run(c, opResolve, key.Name(), func() (any, error) {
		return theory.RomanNumeralToChord(req.Numeral, key)
	})
}

// TransformChord applies extend, quality, suspension or transpose to a chord
func (h *HarmonyHandler) TransformChord(c *gin.Context) {
	var req models.TransformChordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	h.run(c, opTransform, req.Chord.Name, func() (any, error) {
		return req.Apply()
	})
}

// GetSubstitutions lists common-tone, functional and modal-interchange options
func (h *HarmonyHandler) GetSubstitutions(c *gin.Context) {
	var req models.SubstitutionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	key, err := h.resolveKey(req.Key)
	if err != nil {
		respondError(c, err)
		return
	}

	h.run(c, opSubstitutions, key.Name(), func() (any, error) {
		chord, err := theory.RomanNumeralToChord(req.Numeral, key)
		if err != nil {
			return nil, err
		}
		return models.SubstitutionsResponse{
			Key:           key.Name(),
			Chord:         chord,
			Substitutions: theory.GetAllSubstitutions(chord, key),
		}, nil
	})
}

// ScoreProgression resolves a list of numerals and scores the sequence
func (h *HarmonyHandler) ScoreProgression(c *gin.Context) {
	var req models.ScoreProgressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	key, err := h.resolveKey(req.Key)
	if err != nil {
		respondError(c, err)
		return
	}

	h.run(c, opScore, key.Name(), func() (any, error) {
		chords, err := theory.ResolveProgression(req.Numerals, key)
		if err != nil {
			return nil, err
		}
		return models.ScoreProgressionResponse{
			Key:    key.Name(),
			Score:  theory.AnalyzeProgressionStrength(chords),
			Chords: chords,
		}, nil
	})
}

// GetLayout returns the hexagonal layout for ?root=&mode=
func (h *HarmonyHandler) GetLayout(c *gin.Context) {
	req := models.KeyRequest{Root: c.Query("root"), Mode: c.Query("mode")}
	key, err := h.resolveKey(req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.run(c, opLayout, key.Name(), func() (any, error) {
		return models.NewLayoutResponse(key), nil
	})
}

// GetPresets scores the built-in progression library in ?root=&mode=
func (h *HarmonyHandler) GetPresets(c *gin.Context) {
	req := models.KeyRequest{Root: c.Query("root"), Mode: c.Query("mode")}
	key, err := h.resolveKey(req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.run(c, opPresets, key.Name(), func() (any, error) {
		return models.NewPresetsResponse(key)
	})
}

func (h *HarmonyHandler) resolveKey(req models.KeyRequest) (theory.Key, error) {
	return req.Resolve(h.cfg.DefaultKeyRoot, h.cfg.DefaultKeyMode)
}

// run times one engine call, records it and writes the JSON reply
func (h *HarmonyHandler) run(c *gin.Context, operation, key string, compute func() (any, error)) {
	finish := h.spans.StartEngineOperation(c.Request.Context(), operation, key)
	start := time.Now()

	result, err := compute()

	duration := time.Since(start)
	finish(err)
	h.cloudwatch.RecordEngineOperation(operation, duration, err == nil)
	h.stats.Record(operation, duration, err)

	fields := logger.WithContext(c)
	fields["key"] = key
	logger.LogEngineOperation(operation, duration, fields)

	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// respondError maps engine errors to 400 and anything unexpected to 500
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			status = http.StatusBadRequest
			break
		}
	}
	writeError(c, status, err)
}

// respondBindError rejects a body that failed JSON decoding or validation
func respondBindError(c *gin.Context, err error) {
	writeError(c, http.StatusBadRequest, err)
}

func writeError(c *gin.Context, status int, err error) {
	fields := logger.WithContext(c)
	if status >= http.StatusInternalServerError {
		logger.Error("Harmony request failed", err, fields)
	} else {
		fields["error"] = err.Error()
		logger.Warn("Rejected harmony request", fields)
	}

	c.JSON(status, models.ErrorResponse{
		Error:     err.Error(),
		RequestID: c.GetString("request_id"),
	})
}
