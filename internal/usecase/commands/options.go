package commands

import (
	"strings"
	"time"
	_ "time/tzdata"

	"storezee/internal/pkg/config"
)

type UploadPolicy string

const (
	// PolicyAbsorb logs the failed upload and carries on without its reference.
	PolicyAbsorb UploadPolicy = "absorb"
	// PolicyFatal aborts the workflow and rolls the transaction back.
	PolicyFatal UploadPolicy = "fatal"
)

func ParseUploadPolicy(s string, fallback UploadPolicy) UploadPolicy {
	switch UploadPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyAbsorb:
		return PolicyAbsorb
	case PolicyFatal:
		return PolicyFatal
	default:
		return fallback
	}
}

type WorkflowOptions struct {
	Timeout                time.Duration
	PhotoConcurrency       int
	DocumentUploadPolicy   UploadPolicy
	PhotoUploadPolicy      UploadPolicy
	DedupeCustomerByPhone  bool
	CleanupOrphanedUploads bool
	// TimeZone interprets start times submitted without an offset.
	TimeZone               *time.Location
}

const defaultTimeZone = "Asia/Kolkata"

func loadZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil
	}
	return loc
}

func DefaultWorkflowOptions() WorkflowOptions {
	return WorkflowOptions{
		Timeout:                60 * time.Second,
		PhotoConcurrency:       4,
		DocumentUploadPolicy:   PolicyAbsorb,
		PhotoUploadPolicy:      PolicyFatal,
		DedupeCustomerByPhone:  false,
		CleanupOrphanedUploads: true,
		TimeZone:               loadZone(defaultTimeZone),
	}
}

func WorkflowOptionsFromConfig(cfg config.BookingConfig) WorkflowOptions {
	def := DefaultWorkflowOptions()
	opts := WorkflowOptions{
		Timeout:                cfg.WorkflowTimeout,
		PhotoConcurrency:       cfg.PhotoUploadConcurrency,
		DocumentUploadPolicy:   ParseUploadPolicy(cfg.DocumentUploadPolicy, def.DocumentUploadPolicy),
		PhotoUploadPolicy:      ParseUploadPolicy(cfg.PhotoUploadPolicy, def.PhotoUploadPolicy),
		DedupeCustomerByPhone:  cfg.DedupeCustomerByPhone,
		CleanupOrphanedUploads: cfg.CleanupOrphanedUploads,
		TimeZone:               loadZone(cfg.TimeZone),
	}
	if opts.PhotoConcurrency <= 0 {
		opts.PhotoConcurrency = def.PhotoConcurrency
	}
	if opts.TimeZone == nil {
		opts.TimeZone = def.TimeZone
	}
	return opts
}
