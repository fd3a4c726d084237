package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/remedyhq/remedy/pkg/domain/model"
	"github.com/remedyhq/remedy/pkg/domain/types"
	"github.com/remedyhq/remedy/pkg/infra"
	"github.com/remedyhq/remedy/pkg/repository/memory"
	"github.com/remedyhq/remedy/pkg/usecase"
)

const sampleSARIF = `{"runs":[{"results":[
	{"ruleId":"r1","message":{"text":"SQL injection"},"level":"error","locations":[{"physicalLocation":{"artifactLocation":{"uri":"app/db.py"},"region":{"startLine":10,"endLine":12}}}]},
	{"ruleId":"r2","message":{"text":"weak hash"},"level":"note"}
]}]}`

func testIntake(artifactURL string) *model.IntakeInput {
	return &model.IntakeInput{
		Repo:        "acme/api",
		PRNumber:    7,
		CommitSHA:   "deadbeef",
		ArtifactURL: artifactURL,
	}
}

func TestCreateScan(t *testing.T) {
	ctx := context.Background()

	t.Run("valid input yields a pending scan", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(infra.New(infra.WithScanRepository(repo)))

		scan, err := uc.CreateScan(ctx, testIntake("https://ci.example.com/a.sarif"))
		gt.NoError(t, err)
		gt.V(t, scan.Status).Equal(types.ScanStatusPending)
		gt.V(t, scan.ScanType).Equal("semgrep")

		stored, err := repo.GetScan(ctx, scan.ID)
		gt.NoError(t, err)
		gt.V(t, stored.Repo).Equal("acme/api")
	})

	t.Run("missing repo is rejected", func(t *testing.T) {
		uc := usecase.New(infra.New())

		_, err := uc.CreateScan(ctx, &model.IntakeInput{ArtifactURL: "https://ci.example.com/a.sarif"})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("missing artifact URL is rejected", func(t *testing.T) {
		uc := usecase.New(infra.New())

		_, err := uc.CreateScan(ctx, &model.IntakeInput{Repo: "acme/api"})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})
}

func TestIngestArtifact(t *testing.T) {
	ctx := context.Background()

	t.Run("downloads, parses and persists findings", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(sampleSARIF))
		}))
		defer srv.Close()

		repo := memory.New()
		uc := usecase.New(infra.New(infra.WithScanRepository(repo)))

		scan, err := uc.CreateScan(ctx, testIntake(srv.URL))
		gt.NoError(t, err)

		gt.NoError(t, uc.IngestArtifact(ctx, scan.ID))

		stored, err := repo.GetScan(ctx, scan.ID)
		gt.NoError(t, err)
		gt.V(t, stored.Status).Equal(types.ScanStatusProcessing)

		findings, err := repo.ListFindings(ctx, scan.ID)
		gt.NoError(t, err)
		gt.V(t, len(findings)).Equal(2)
		gt.V(t, findings[0].RuleID).Equal("r1")
		gt.V(t, findings[0].ScanID).Equal(scan.ID)
		gt.True(t, findings[0].ID != "")
	})

	t.Run("non-2xx artifact response leaves the scan pending", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		repo := memory.New()
		uc := usecase.New(infra.New(infra.WithScanRepository(repo)))

		scan, err := uc.CreateScan(ctx, testIntake(srv.URL))
		gt.NoError(t, err)

		err = uc.IngestArtifact(ctx, scan.ID)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidArtifact))

		stored, err := repo.GetScan(ctx, scan.ID)
		gt.NoError(t, err)
		gt.V(t, stored.Status).Equal(types.ScanStatusPending)
	})

	t.Run("malformed artifact leaves the scan pending", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"runs": [`))
		}))
		defer srv.Close()

		repo := memory.New()
		uc := usecase.New(infra.New(infra.WithScanRepository(repo)))

		scan, err := uc.CreateScan(ctx, testIntake(srv.URL))
		gt.NoError(t, err)

		err = uc.IngestArtifact(ctx, scan.ID)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrMalformedSARIF))

		stored, err := repo.GetScan(ctx, scan.ID)
		gt.NoError(t, err)
		gt.V(t, stored.Status).Equal(types.ScanStatusPending)
	})

	t.Run("unknown scan fails", func(t *testing.T) {
		uc := usecase.New(infra.New())
		gt.Error(t, uc.IngestArtifact(ctx, types.NewScanID()))
	})

	t.Run("second ingestion is rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(sampleSARIF))
		}))
		defer srv.Close()

		repo := memory.New()
		uc := usecase.New(infra.New(infra.WithScanRepository(repo)))

		scan, err := uc.CreateScan(ctx, testIntake(srv.URL))
		gt.NoError(t, err)
		gt.NoError(t, uc.IngestArtifact(ctx, scan.ID))

		err = uc.IngestArtifact(ctx, scan.ID)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidTransition))
	})
}
