package database

type migration struct {
	id          MigrationId
	description string
	query       string
}

var migrations = []migration{
	{
		id:          0,
		description: "Generated assets",
		query: `
			CREATE TABLE generated_asset (
			    id INTEGER PRIMARY KEY,
			    output_path TEXT,
			    fingerprint TEXT,
			    width INT,
			    height INT,
			    run_id TEXT,
			    generated_timestamp DATETIME,

			    UNIQUE (output_path)
			);

			CREATE INDEX generated_asset_run_id_idx ON generated_asset (run_id);
		`,
	},
}
