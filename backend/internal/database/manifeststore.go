package database

import (
	"errors"
	"github.com/upper/db/v4"
	"sync"
	"time"
	"vincit.fi/asset-fitter/api"
	"vincit.fi/asset-fitter/api/apitype"
	"vincit.fi/asset-fitter/common/logger"
)

// ManifestStore remembers the fingerprint of every written asset so that
// unchanged assets can be skipped on the next run.
type ManifestStore struct {
	database   *Database
	collection db.Collection
	mux        sync.Mutex

	api.AssetManifest
}

func NewManifestStore(database *Database) *ManifestStore {
	return &ManifestStore{
		database: database,
	}
}

func (s *ManifestStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("generated_asset")
	}
	return s.collection
}

func (s *ManifestStore) UpToDate(outputPath string, fingerprint string) (*api.ManifestRecord, bool) {
	record, err := s.GetRecord(outputPath)
	if err != nil {
		if !errors.Is(err, db.ErrNoMoreRows) {
			logger.Warn.Printf("Could not read manifest for '%s': %s", outputPath, err)
		}
		return nil, false
	}
	if record.Fingerprint != fingerprint {
		return nil, false
	}
	return record, true
}

func (s *ManifestStore) GetRecord(outputPath string) (*api.ManifestRecord, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	var asset GeneratedAsset
	if err := s.getCollection().Find(db.Cond{"output_path": outputPath}).One(&asset); err != nil {
		return nil, err
	}
	return toManifestRecord(&asset), nil
}

func (s *ManifestStore) GetRecordsForRun(runId string) ([]*api.ManifestRecord, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	var assets []GeneratedAsset
	if err := s.getCollection().Find(db.Cond{"run_id": runId}).OrderBy("output_path").All(&assets); err != nil {
		return nil, err
	}
	records := make([]*api.ManifestRecord, len(assets))
	for i := range assets {
		records[i] = toManifestRecord(&assets[i])
	}
	return records, nil
}

func (s *ManifestStore) Record(record *api.ManifestRecord) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	asset := GeneratedAsset{
		OutputPath:         record.OutputPath,
		Fingerprint:        record.Fingerprint,
		Width:              record.Size.Width(),
		Height:             record.Size.Height(),
		RunId:              record.RunId,
		GeneratedTimestamp: time.Now(),
	}

	return s.getCollection().Session().Tx(func(session db.Session) error {
		collection := session.Collection(s.getCollection().Name())
		res := collection.Find(db.Cond{"output_path": record.OutputPath})
		if exists, err := res.Exists(); err != nil {
			return err
		} else if exists {
			logger.Trace.Printf("Update manifest for '%s'", record.OutputPath)
			return res.Update(map[string]interface{}{
				"fingerprint":         asset.Fingerprint,
				"width":               asset.Width,
				"height":              asset.Height,
				"run_id":              asset.RunId,
				"generated_timestamp": asset.GeneratedTimestamp,
			})
		} else {
			logger.Trace.Printf("Add manifest for '%s'", record.OutputPath)
			_, err := collection.Insert(asset)
			return err
		}
	})
}

func (s *ManifestStore) Close() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.collection = nil
	s.database.Close()
}

func toManifestRecord(asset *GeneratedAsset) *api.ManifestRecord {
	return &api.ManifestRecord{
		OutputPath:  asset.OutputPath,
		Fingerprint: asset.Fingerprint,
		Size:        apitype.SizeOf(asset.Width, asset.Height),
		RunId:       asset.RunId,
	}
}
