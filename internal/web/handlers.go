// Package web is the HTTP JSON surface over the guide design
// pipeline, consumed by the dashboard and other clients
package web

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/Jhansik957/CRISPR-Design-Dashboard/config"
	"github.com/Jhansik957/CRISPR-Design-Dashboard/internal/crispr"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DesignRequest is the body of POST /design. GC bounds are fractions;
// zero values fall back to the server's configured defaults
type DesignRequest struct {
	Sequence            string  `json:"sequence"`
	Profile             string  `json:"profile"`
	GCMin               float64 `json:"gc_min"`
	GCMax               float64 `json:"gc_max"`
	EfficiencyThreshold float64 `json:"efficiency_threshold"`
	MaxOffTarget        float64 `json:"max_off_target"`
	ShowAll             bool    `json:"show_all"`
}

// GuideResponse is one scored guide candidate
type GuideResponse struct {
	Sequence            string  `json:"sequence"`
	PAM                 string  `json:"pam"`
	Position            int     `json:"position"`
	GCContent           float64 `json:"gc_content"`
	GCScore             float64 `json:"gc_score"`
	SelfComplementarity float64 `json:"self_complementarity"`
	Homopolymer         float64 `json:"homopolymer"`
	PositionScore       float64 `json:"position_score"`
	EfficiencyScore     float64 `json:"efficiency_score"`
	OffTargetScore      float64 `json:"off_target_score"`
}

// DesignResponse is the body of a successful POST /design
type DesignResponse struct {
	RunID    string          `json:"run_id"`
	Profile  string          `json:"profile"`
	PamSites []int           `json:"pam_sites"`
	Guides   []GuideResponse `json:"guides"`
	Total    int             `json:"total_candidates"`
	FellBack bool            `json:"fell_back"`
}

// NewRouter builds the gin router with every API route registered
func NewRouter(c config.Config) *gin.Engine {
	router := gin.Default()

	router.POST("/design", NewDesignHandler(c))
	router.POST("/analyze", NewAnalyzeHandler(c))
	router.POST("/generate", NewGenerateHandler(c))

	return router
}

// NewDesignHandler builds the gin handler for POST /design
func NewDesignHandler(c config.Config) func(ctx *gin.Context) {
	designer := crispr.NewDesigner()
	gcMin, gcMax := c.GCBounds()

	return func(ctx *gin.Context) {
		var req DesignRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
			return
		}

		seq, ok := cleanSequence(ctx, c, req.Sequence)
		if !ok {
			return
		}

		profile, err := crispr.ProfileByName(req.Profile)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		opts := crispr.Options{
			GCMin:               req.GCMin,
			GCMax:               req.GCMax,
			EfficiencyThreshold: req.EfficiencyThreshold,
			MaxOffTarget:        req.MaxOffTarget,
			ShowAll:             req.ShowAll,
		}
		if opts.GCMax == 0 {
			opts.GCMin, opts.GCMax = gcMin, gcMax
		}
		if opts.MaxOffTarget == 0 {
			opts.MaxOffTarget = c.Design.MaxOffTarget
		}

		result, err := designer.Design(seq, profile, opts)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp := DesignResponse{
			RunID:    uuid.New().String(),
			Profile:  profile.Name,
			PamSites: result.PamSites,
			Guides:   make([]GuideResponse, len(result.Guides)),
			Total:    len(result.All),
			FellBack: result.FellBack,
		}
		for i, g := range result.Guides {
			resp.Guides[i] = GuideResponse{
				Sequence:            g.Seq,
				PAM:                 g.PAM,
				Position:            g.Start,
				GCContent:           g.GC,
				GCScore:             g.Scores.GC,
				SelfComplementarity: g.Scores.SelfComplementarity,
				Homopolymer:         g.Scores.Homopolymer,
				PositionScore:       g.Scores.Position,
				EfficiencyScore:     g.Scores.Final,
				OffTargetScore:      g.OffTarget,
			}
		}

		ctx.JSON(http.StatusOK, resp)
	}
}

// AnalyzeRequest is the body of POST /analyze
type AnalyzeRequest struct {
	Sequence string `json:"sequence"`
}

// NewAnalyzeHandler builds the gin handler for POST /analyze
func NewAnalyzeHandler(c config.Config) func(ctx *gin.Context) {
	scorer := crispr.NewScorer()

	return func(ctx *gin.Context) {
		var req AnalyzeRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
			return
		}

		seq, ok := cleanSequence(ctx, c, req.Sequence)
		if !ok {
			return
		}

		scores := scorer.ScoreAll(seq)
		detail := crispr.AnalyzeStructure(seq)
		counts := crispr.BaseCounts(seq)

		ctx.JSON(http.StatusOK, gin.H{
			"run_id":     uuid.New().String(),
			"length":     len(seq),
			"gc_content": crispr.GCFraction(seq),
			"base_counts": gin.H{
				"A": counts['A'], "T": counts['T'], "G": counts['G'], "C": counts['C'],
			},
			"scores": gin.H{
				"gc_score":             scores.GC,
				"self_complementarity": scores.SelfComplementarity,
				"homopolymer":          scores.Homopolymer,
				"position":             scores.Position,
				"final_score":          scores.Final,
			},
			"structure": gin.H{
				"gc_pairs":  detail.GCPairs,
				"at_pairs":  detail.ATPairs,
				"stability": detail.Stability,
				"estimate":  crispr.StabilityEstimate(seq),
			},
			"reverse_complement": crispr.ReverseComplement(seq),
		})
	}
}

// GenerateRequest is the body of POST /generate. GC is a percentage;
// when zero the organism preset is used
type GenerateRequest struct {
	Length   int     `json:"length"`
	Organism string  `json:"organism"`
	GC       float64 `json:"gc"`
	Seed     int64   `json:"seed"`
}

// NewGenerateHandler builds the gin handler for POST /generate
func NewGenerateHandler(c config.Config) func(ctx *gin.Context) {
	return func(ctx *gin.Context) {
		var req GenerateRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
			return
		}

		if req.Length <= 0 || req.Length > c.Limits.MaxSequenceLength {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error": "length must be between 1 and the configured maximum",
			})
			return
		}

		gc := req.GC
		if gc == 0 {
			var err error
			if gc, err = crispr.OrganismGC(req.Organism); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		seed := req.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		seq := crispr.GenerateSequence(req.Length, gc, rand.New(rand.NewSource(seed)))

		ctx.JSON(http.StatusOK, gin.H{
			"run_id":     uuid.New().String(),
			"sequence":   seq,
			"gc_content": crispr.GCFraction(seq),
			"target_gc":  gc / 100,
		})
	}
}

// cleanSequence validates and size-caps a request sequence, writing
// the error response itself when the sequence is unusable
func cleanSequence(ctx *gin.Context, c config.Config, raw string) (string, bool) {
	seq := crispr.CleanSequence(raw)
	if err := crispr.ValidateSequence(seq); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	if len(seq) > c.Limits.MaxSequenceLength {
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": "sequence exceeds the configured maximum length",
		})
		return "", false
	}
	return seq, true
}
