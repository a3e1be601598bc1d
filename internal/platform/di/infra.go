package di

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	appcfg "alwarmart/internal/infra/config"
)

// Infra owns the external clients shared by every adapter.
//
// Firestore and GCS are strict: failing to build either aborts startup.
// The Realtime Database client is best-effort when RTDB_URL is unset, since
// catalog-only deployments run without the order console.
type Infra struct {
	Config    *appcfg.Config
	ProjectID string

	Firestore *firestore.Client
	GCS       *storage.Client
	RTDB      *db.Client
}

func NewInfra(ctx context.Context, cfg *appcfg.Config, log *zap.Logger) (*Infra, error) {
	if cfg == nil {
		return nil, errors.New("di: config is nil")
	}

	projectID := strings.TrimSpace(cfg.ProjectID)
	if projectID == "" {
		return nil, errors.New("di: project id is empty (set GCP_PROJECT_ID or GOOGLE_CLOUD_PROJECT)")
	}

	inf := &Infra{Config: cfg, ProjectID: projectID}

	var clientOpts []option.ClientOption
	if credFile := strings.TrimSpace(cfg.CredentialsFile); credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
		log.Info("using credentials file for GCP clients")
	} else {
		log.Info("using application default credentials")
	}

	// Firestore (strict)
	fsClient, err := firestore.NewClient(ctx, projectID, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("di: firestore.NewClient failed (project=%s): %w", projectID, err)
	}
	inf.Firestore = fsClient
	log.Info("firestore connected", zap.String("project", projectID))

	// GCS (strict)
	gcsClient, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		_ = inf.Firestore.Close()
		return nil, fmt.Errorf("di: storage.NewClient failed: %w", err)
	}
	inf.GCS = gcsClient
	log.Info("gcs storage client initialized")

	// Realtime Database (best-effort)
	if rtdbURL := strings.TrimSpace(cfg.RTDBURL); rtdbURL != "" {
		fbCfg := &firebase.Config{ProjectID: projectID, DatabaseURL: rtdbURL}
		app, err := firebase.NewApp(ctx, fbCfg, clientOpts...)
		if err != nil {
			log.Warn("firebase app init failed, order features disabled", zap.Error(err))
		} else {
			dbClient, err := app.Database(ctx)
			if err != nil {
				log.Warn("realtime database init failed, order features disabled", zap.Error(err))
			} else {
				inf.RTDB = dbClient
				log.Info("realtime database connected", zap.String("url", rtdbURL))
			}
		}
	} else {
		log.Warn("RTDB_URL not set, order features disabled")
	}

	return inf, nil
}

func (i *Infra) Close() error {
	if i == nil {
		return nil
	}
	if i.Firestore != nil {
		_ = i.Firestore.Close()
	}
	if i.GCS != nil {
		_ = i.GCS.Close()
	}
	return nil
}
