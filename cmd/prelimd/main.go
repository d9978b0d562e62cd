package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	api "github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/api/http"
	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/attendance"
	auth "github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/auth/middleware"
	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/config"
	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/db"
	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/notify"
	storage "github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/storage"
	syncx "github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/sync"
)

func main() {
	if err := config.LoadDotEnv(""); err != nil {
		log.Fatal(err)
	}
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	defer dbh.Close()

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	// --- Auth ---
	secret := cfg.AuthHMACSecret
	if secret == "" {
		if cfg.Mode == config.ModeOnline {
			log.Fatal("AUTH_HMAC_SECRET is required in online mode")
		}
		// tokens will not survive a restart
		secret = uuid.NewString()
		log.Printf("AUTH_HMAC_SECRET not set; using a per-process secret")
	}
	authSvc := auth.NewAuthService(secret)

	var verifier auth.CredentialVerifier
	if cfg.EnableLocalAuth {
		accounts, err := auth.ParseAccounts(cfg.LocalAccounts)
		if err != nil {
			log.Fatalf("LOCAL_ACCOUNTS: %v", err)
		}
		if cfg.AdminPassHash != "" {
			accounts = append(accounts, auth.Account{Username: cfg.AdminUser, Role: "admin", PassHash: cfg.AdminPassHash})
		}
		if len(accounts) == 0 {
			log.Printf("local auth enabled but no accounts configured; logins will fail")
		}
		verifier = auth.NewAccountVerifier(accounts...)
	}

	notifier := notify.New(cfg.NotifyURLs, notify.ShoutrrrSender{})

	r := api.NewRouter(api.Deps{
		Auth:             authSvc,
		Verifier:         verifier,
		Store:            attendance.NewSQLStore(dbh),
		Blobs:            bs,
		Events:           syncx.NewEventRepo(dbh).WithSite(cfg.SiteID),
		Notifier:         notifier,
		NotifyOnAutoFail: cfg.NotifyOnAutoFail,
		CORSOrigins:      cfg.CORSOrigins(),
		Ready:            dbh.PingContext,
	})

	s := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("listening on %s (mode=%s, db=%s, notify=%d)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver, len(cfg.NotifyURLs))
	log.Fatal(s.ListenAndServe())
}
