package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/worddee/internal/adapters/http/api"
	"github.com/okian/worddee/internal/domain/model"
	"github.com/okian/worddee/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// Mock implementations for testing
type mockDependencies struct {
	scoreResult model.ScoreResult
	scoreErr    error
	localResult model.ScoreResult
	localErr    error
	word        model.Word
	wordErr     error
	summary     json.RawMessage
	summaryErr  error
	panicOn     string

	scored []model.Submission
	local  []model.Submission
}

func (m *mockDependencies) Score(_ context.Context, sub model.Submission) (model.ScoreResult, error) {
	if m.panicOn == "score" {
		panic("boom")
	}
	m.scored = append(m.scored, sub)
	return m.scoreResult, m.scoreErr
}

func (m *mockDependencies) ScoreLocal(_ context.Context, sub model.Submission) (model.ScoreResult, error) {
	m.local = append(m.local, sub)
	return m.localResult, m.localErr
}

func (m *mockDependencies) Word(context.Context) (model.Word, error) {
	return m.word, m.wordErr
}

func (m *mockDependencies) Summary(context.Context) (json.RawMessage, error) {
	return m.summary, m.summaryErr
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func newMux(deps *mockDependencies) *http.ServeMux {
	server := api.NewServer(deps, &mockStatsProvider{stats: map[string]interface{}{"started": true}})
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return mux
}

func do(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeError(w *httptest.ResponseRecorder) map[string]string {
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body
}

func TestServer_Register(t *testing.T) {
	Convey("Given a new API server", t, func() {
		mux := newMux(&mockDependencies{})

		Convey("Then health endpoint should expose metrics", func() {
			w := do(mux, http.MethodGet, "/healthz", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "worddee_scoring")
		})

		Convey("Then stats endpoint should be accessible", func() {
			w := do(mux, http.MethodGet, "/stats", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"started":true`)
		})

		Convey("Then wrong methods should be rejected", func() {
			So(do(mux, http.MethodGet, "/api/score", "").Code, ShouldEqual, http.StatusMethodNotAllowed)
			So(do(mux, http.MethodPost, "/api/word", "").Code, ShouldEqual, http.StatusMethodNotAllowed)
		})

		Convey("Then every response should carry a request id", func() {
			w := do(mux, http.MethodGet, "/stats", "")
			So(w.Header().Get(api.RequestIDHeader), ShouldNotBeEmpty)
		})

		Convey("Then a client request id should be echoed", func() {
			req := httptest.NewRequest(http.MethodGet, "/stats", http.NoBody)
			req.Header.Set(api.RequestIDHeader, "req-42")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Header().Get(api.RequestIDHeader), ShouldEqual, "req-42")
		})
	})
}

func TestScoreHandler(t *testing.T) {
	Convey("Given a score endpoint", t, func() {
		want := model.ScoreResult{Score: 80, Level: model.LevelIntermediate, Suggestion: "Good job!", CorrectedSentence: "The team showed great innovation."}
		deps := &mockDependencies{scoreResult: want, localResult: want}
		mux := newMux(deps)

		Convey("When a valid submission is posted", func() {
			w := do(mux, http.MethodPost, "/api/score", `{"word":"Innovation","sentence":"The team showed great innovation."}`)

			Convey("Then the result should be returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var got model.ScoreResult
				So(json.Unmarshal(w.Body.Bytes(), &got), ShouldBeNil)
				So(got, ShouldResemble, want)
				So(deps.scored, ShouldHaveLength, 1)
				So(deps.scored[0].Word, ShouldEqual, "Innovation")
			})

			Convey("And the body should use the wire field names", func() {
				So(w.Body.String(), ShouldContainSubstring, `"corrected_sentence"`)
				So(w.Body.String(), ShouldNotContainSubstring, "source")
			})
		})

		Convey("When the body is not JSON", func() {
			w := do(mux, http.MethodPost, "/api/score", `{"word":`)

			Convey("Then it should return 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(decodeError(w)["code"], ShouldEqual, "bad_request")
				So(deps.scored, ShouldBeEmpty)
			})
		})

		Convey("When the word or sentence is blank", func() {
			Convey("Then it should return 400", func() {
				So(do(mux, http.MethodPost, "/api/score", `{"word":"","sentence":"Hi there."}`).Code, ShouldEqual, http.StatusBadRequest)
				So(do(mux, http.MethodPost, "/api/score", `{"word":"hi","sentence":"   "}`).Code, ShouldEqual, http.StatusBadRequest)
				So(do(mux, http.MethodPost, "/api/score", `{}`).Code, ShouldEqual, http.StatusBadRequest)
				So(deps.scored, ShouldBeEmpty)
			})
		})

		Convey("When local evaluation fails", func() {
			deps.scoreErr = errors.New("local evaluation failed")
			w := do(mux, http.MethodPost, "/api/score", `{"word":"a","sentence":"b"}`)

			Convey("Then it should return 500 scoring_failed", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)
				So(decodeError(w)["code"], ShouldEqual, "scoring_failed")
				So(decodeError(w)["message"], ShouldNotContainSubstring, "local evaluation failed")
			})
		})

		Convey("When the handler panics", func() {
			deps.panicOn = "score"
			w := do(mux, http.MethodPost, "/api/score", `{"word":"a","sentence":"b"}`)

			Convey("Then it should return 500 internal_error", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)
				So(decodeError(w)["code"], ShouldEqual, "internal_error")
			})
		})

		Convey("When the local webhook is called", func() {
			w := do(mux, http.MethodPost, "/webhook/scorer", `{"word":"Innovation","sentence":"The team showed great innovation."}`)

			Convey("Then only the local engine should run", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.local, ShouldHaveLength, 1)
				So(deps.scored, ShouldBeEmpty)
			})
		})
	})
}

func TestWordHandler(t *testing.T) {
	Convey("Given a word endpoint", t, func() {
		deps := &mockDependencies{word: model.Word{Word: "Resilience", Definition: "The ability to recover quickly from difficulties"}}
		mux := newMux(deps)

		Convey("When a word is requested", func() {
			w := do(mux, http.MethodGet, "/api/word", "")

			Convey("Then it should be returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var got model.Word
				So(json.Unmarshal(w.Body.Bytes(), &got), ShouldBeNil)
				So(got, ShouldResemble, deps.word)
			})
		})

		Convey("When no word is available", func() {
			deps.wordErr = errors.New("no words configured")
			w := do(mux, http.MethodGet, "/api/word", "")
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
			So(decodeError(w)["code"], ShouldEqual, "word_unavailable")
		})
	})
}

func TestSummaryHandler(t *testing.T) {
	Convey("Given a summary endpoint", t, func() {
		deps := &mockDependencies{summary: json.RawMessage(`{"total_submissions":2,"average_score":81.5}`)}
		mux := newMux(deps)

		Convey("When the remote summary is available", func() {
			w := do(mux, http.MethodGet, "/api/summary", "")

			Convey("Then it should be relayed verbatim", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldEqual, `{"total_submissions":2,"average_score":81.5}`)
			})
		})

		Convey("When the remote summary fails", func() {
			deps.summaryErr = errors.New("remote down")
			w := do(mux, http.MethodGet, "/api/summary", "")

			Convey("Then it should return 500 with the fixed message", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)
				So(decodeError(w)["message"], ShouldEqual, "Could not fetch dashboard summary from external service.")
			})
		})
	})
}

func TestErrors(t *testing.T) {
	Convey("Given wrapped API errors", t, func() {
		cause := errors.New("cause")
		err := api.WrapKind("api.test", api.ErrBadRequest, cause)

		Convey("Then both kind and cause should match", func() {
			So(errors.Is(err, api.ErrBadRequest), ShouldBeTrue)
			So(errors.Is(err, cause), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "api.test: bad request: cause")
		})

		Convey("Then a bare kind should format without a cause", func() {
			So(api.NewKind("api.test", api.ErrInternal).Error(), ShouldEqual, "api.test: internal error")
		})
	})
}
