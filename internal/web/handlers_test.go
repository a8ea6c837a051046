package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Jhansik957/CRISPR-Design-Dashboard/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testConfig() config.Config {
	return config.Config{
		Design: config.DesignConfig{
			GCMin:               40,
			GCMax:               60,
			EfficiencyThreshold: 0.5,
			MaxOffTarget:        50,
		},
		Limits: config.LimitsConfig{
			MaxSequenceLength: 1000,
			MaxBatchRows:      100,
		},
	}
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(testConfig())
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestDesignRoute(t *testing.T) {
	router := setupRouter()

	w := postJSON(router, "/design", DesignRequest{
		Sequence: "ATCGATCGATCGATCGATCGAGGATCG",
		Profile:  "SpCas9",
		GCMin:    0.3,
		GCMax:    0.7,
		ShowAll:  true,
	})

	assert.Equal(t, 200, w.Code)

	var resp DesignResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, "SpCas9", resp.Profile)
	assert.Equal(t, []int{20}, resp.PamSites)
	assert.Equal(t, 1, len(resp.Guides))
	assert.Equal(t, "ATCGATCGATCGATCGATCG", resp.Guides[0].Sequence)
	assert.Equal(t, "AGG", resp.Guides[0].PAM)
	assert.Equal(t, 22.5, resp.Guides[0].OffTargetScore)
}

func TestDesignRoute_invalidSequence(t *testing.T) {
	router := setupRouter()

	w := postJSON(router, "/design", DesignRequest{
		Sequence: "ATXG",
		Profile:  "SpCas9",
	})

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestDesignRoute_unknownProfile(t *testing.T) {
	router := setupRouter()

	w := postJSON(router, "/design", DesignRequest{
		Sequence: "ATCGATCGATCGATCGATCGAGGATCG",
		Profile:  "Cas13",
	})

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "unknown nuclease profile")
}

func TestDesignRoute_oversized(t *testing.T) {
	router := setupRouter()

	w := postJSON(router, "/design", DesignRequest{
		Sequence: strings.Repeat("ATGC", 300), // 1200 bp, over the 1000 cap
		Profile:  "SpCas9",
	})

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestAnalyzeRoute(t *testing.T) {
	router := setupRouter()

	w := postJSON(router, "/analyze", AnalyzeRequest{Sequence: "GGGGGGGGGGGGGGGGGGGG"})

	assert.Equal(t, 200, w.Code)

	var resp map[string]interface{}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(20), resp["length"])
	assert.Equal(t, float64(1), resp["gc_content"])
	assert.Equal(t, "CCCCCCCCCCCCCCCCCCCC", resp["reverse_complement"])

	scores := resp["scores"].(map[string]interface{})
	assert.Equal(t, float64(0), scores["gc_score"])
}

func TestGenerateRoute(t *testing.T) {
	router := setupRouter()

	w := postJSON(router, "/generate", GenerateRequest{
		Length:   200,
		Organism: "ecoli",
		Seed:     42,
	})

	assert.Equal(t, 200, w.Code)

	var resp map[string]interface{}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	seq := resp["sequence"].(string)
	assert.Equal(t, 200, len(seq))
	assert.Equal(t, 0.51, resp["target_gc"])

	// a fixed seed is reproducible
	w2 := postJSON(router, "/generate", GenerateRequest{Length: 200, Organism: "ecoli", Seed: 42})
	var resp2 map[string]interface{}
	assert.Nil(t, json.Unmarshal(w2.Body.Bytes(), &resp2))
	assert.Equal(t, seq, resp2["sequence"])
}

func TestGenerateRoute_badLength(t *testing.T) {
	router := setupRouter()

	w := postJSON(router, "/generate", GenerateRequest{Length: 0, Organism: "human"})
	assert.Equal(t, 400, w.Code)

	w = postJSON(router, "/generate", GenerateRequest{Length: 100000, Organism: "human"})
	assert.Equal(t, 400, w.Code)
}

func TestGenerateRoute_unknownOrganism(t *testing.T) {
	router := setupRouter()

	w := postJSON(router, "/generate", GenerateRequest{Length: 100, Organism: "tardigrade"})
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "unknown organism")
}
