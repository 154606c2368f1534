package database

import "time"

type MigrationId int64

type Migration struct {
	Id MigrationId `db:"id"`
}

type GeneratedAsset struct {
	Id                 int64     `db:"id,omitempty"`
	OutputPath         string    `db:"output_path"`
	Fingerprint        string    `db:"fingerprint"`
	Width              int       `db:"width"`
	Height             int       `db:"height"`
	RunId              string    `db:"run_id"`
	GeneratedTimestamp time.Time `db:"generated_timestamp"`
}
