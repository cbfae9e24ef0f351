package main

import (
	"fmt"
	"io"
	"time"

	"pushrelay/config"
	"pushrelay/internal/infra/auth"
)

func runToken(w io.Writer, subject, role string, ttl time.Duration) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	return issueToken(w, cfg, subject, role, ttl)
}

func issueToken(w io.Writer, cfg *config.Config, subject, role string, ttl time.Duration) error {
	if role == "" {
		role = cfg.Auth.RequiredRole
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := tokenSvc.GenerateToken(subject, []string{role}, ttl)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, token)

	return err
}
