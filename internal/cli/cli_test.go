package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/worddee/internal/adapters/http/api"
	service "github.com/okian/worddee/internal/app"
	"github.com/okian/worddee/internal/config"
	"github.com/okian/worddee/internal/domain/model"
	"github.com/okian/worddee/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// isolateEnv clears every variable config.Load reads and restores them when
// the test ends.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvConfigFile,
		"WORDDEE_ADDR",
		"WORDDEE_LOG_LEVEL",
		"WORDDEE_SCORER_WEBHOOK",
		"WORDDEE_SUMMARY_WEBHOOK",
		"WORDDEE_SCORER_TIMEOUT_MS",
		"WORDDEE_SUMMARY_TIMEOUT_MS",
		"N8N_SCORER_WEBHOOK",
		"N8N_SUMMARY_WEBHOOK",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv(config.EnvDotEnvFile, filepath.Join(t.TempDir(), "missing.env"))
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "worddeectl (devel)\n", out)
}

func TestScore_Local(t *testing.T) {
	isolateEnv(t)

	out, _, err := run(t, "score", "--word", "Innovation", "--sentence", "The team showed great innovation.", "--local")
	require.NoError(t, err)

	var res model.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 80.0, res.Score, 0.001)
	assert.Equal(t, model.LevelIntermediate, res.Level)
	assert.Equal(t, "The team showed great innovation.", res.CorrectedSentence)
}

func TestScore_FallsBackWithoutWebhook(t *testing.T) {
	isolateEnv(t)

	out, stderr, err := run(t, "score", "--word", "innovation", "--sentence", "The team showed great innovation.")
	require.NoError(t, err)

	var res model.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, model.LevelIntermediate, res.Level)
	assert.NotContains(t, out, "level=", "logs must not reach stdout")
	assert.Contains(t, stderr, "scorer webhook")
}

func TestScore_UsesConfiguredWebhook(t *testing.T) {
	isolateEnv(t)

	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"score":92,"level":"Advanced","suggestion":"Excellent!","corrected_sentence":"Great."}`))
	}))
	defer remote.Close()

	cfgFile := filepath.Join(t.TempDir(), "worddee.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("scorer_webhook: "+remote.URL+"\n"), 0o600))

	out, _, err := run(t, "--config", cfgFile, "score", "--word", "great", "--sentence", "Great.")
	require.NoError(t, err)

	var res model.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, model.ScoreResult{
		Score:             92,
		Level:             model.LevelAdvanced,
		Suggestion:        "Excellent!",
		CorrectedSentence: "Great.",
	}, res)
}

func TestScore_RequiresFlags(t *testing.T) {
	isolateEnv(t)

	_, _, err := run(t, "score", "--word", "innovation")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sentence")
}

func TestScore_RejectsBlankSentence(t *testing.T) {
	isolateEnv(t)

	_, _, err := run(t, "score", "--word", "innovation", "--sentence", "   ", "--local")
	require.ErrorIs(t, err, service.ErrInvalidSubmission)
}

func TestScore_InvalidConfig(t *testing.T) {
	isolateEnv(t)
	t.Setenv("WORDDEE_SCORER_TIMEOUT_MS", "0")

	_, _, err := run(t, "score", "--word", "a", "--sentence", "b")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	isolateEnv(t)

	svc := service.New()
	require.NoError(t, svc.Start(context.Background()))
	defer svc.Stop()
	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(context.Background(), mux)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	out, _, err := run(t, "load", "--url", srv.URL, "--n", "24", "--workers", "3", "--timeout", "5s")
	require.NoError(t, err)
	assert.Contains(t, out, "submitted     24/24")
	assert.Contains(t, out, "failed        0")
	assert.Contains(t, out, string(model.LevelBeginner))
}

func TestLoad_UnreachableService(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, _, err := run(t, "load", "--url", url, "--n", "1", "--timeout", "1s")
	require.Error(t, err)
}
