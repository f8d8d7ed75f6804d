package kvdb

import (
	"errors"
	"fmt"
	"time"

	"github.com/lintang-b-s/geo-aggregator/pkg/compress"
	"github.com/lintang-b-s/geo-aggregator/pkg/datastructure"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var (
	ErrorsKeyNotExists = errors.New("key not exists")
)

const (
	BBOLTDB_RUN_BUCKET = "aggregationRuns"
)

// KVDB stores aggregation runs. value = zstd(msgpack(storedRun)).
type KVDB struct {
	db      *bbolt.DB
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func NewKVDB(db *bbolt.DB) (*KVDB, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(BBOLTDB_RUN_BUCKET))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error when creating bucket %s: %w", BBOLTDB_RUN_BUCKET, err)
	}

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}

	return &KVDB{
		db:      db,
		encoder: encoder,
		decoder: decoder,
	}, nil
}

type storedCluster struct {
	GroupID int     `msgpack:"g"`
	Lon     float64 `msgpack:"x"`
	Lat     float64 `msgpack:"y"`
	Members []byte  `msgpack:"m"` // gap varint posting list
}

type storedRun struct {
	ID           string          `msgpack:"id"`
	CreatedAt    int64           `msgpack:"created_at"` // unix nano
	Radius       float64         `msgpack:"radius"`
	Strategy     string          `msgpack:"strategy"`
	SpatialIndex string          `msgpack:"spatial_index"`
	InputCount   int             `msgpack:"input_count"`
	Clusters     []storedCluster `msgpack:"clusters"`
}

func (db *KVDB) SaveRun(run datastructure.AggregationRun) error {
	runBytes, err := db.serializeRun(run)
	if err != nil {
		return err
	}

	return db.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_RUN_BUCKET))
		return b.Put([]byte(run.ID), runBytes)
	})
}

func (db *KVDB) GetRun(id string) (run datastructure.AggregationRun, err error) {
	var runBytes []byte
	err = db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_RUN_BUCKET))
		v := b.Get([]byte(id))
		if v == nil {
			return ErrorsKeyNotExists
		}
		// v is only valid inside the transaction
		runBytes = append([]byte{}, v...)
		return nil
	})
	if err != nil {
		return
	}

	return db.deserializeRun(runBytes)
}

func (db *KVDB) Close() {
	db.decoder.Close()
	_ = db.encoder.Close()
}

func (db *KVDB) serializeRun(run datastructure.AggregationRun) ([]byte, error) {
	stored := storedRun{
		ID:           run.ID,
		CreatedAt:    run.CreatedAt.UnixNano(),
		Radius:       run.Radius,
		Strategy:     run.Strategy,
		SpatialIndex: run.SpatialIndex,
		InputCount:   run.InputCount,
		Clusters:     make([]storedCluster, len(run.Clusters)),
	}
	for i, c := range run.Clusters {
		stored.Clusters[i] = storedCluster{
			GroupID: c.GroupID,
			Lon:     c.Lon,
			Lat:     c.Lat,
			Members: compress.EncodePostingList(c.Members),
		}
	}

	buf, err := msgpack.Marshal(&stored)
	if err != nil {
		return nil, fmt.Errorf("error when marshalling run %s: %w", run.ID, err)
	}
	return db.encoder.EncodeAll(buf, make([]byte, 0, len(buf)/2)), nil
}

func (db *KVDB) deserializeRun(runBytes []byte) (datastructure.AggregationRun, error) {
	buf, err := db.decoder.DecodeAll(runBytes, nil)
	if err != nil {
		return datastructure.AggregationRun{}, fmt.Errorf("error when decompressing run: %w", err)
	}

	var stored storedRun
	err = msgpack.Unmarshal(buf, &stored)
	if err != nil {
		return datastructure.AggregationRun{}, fmt.Errorf("error when unmarshalling run: %w", err)
	}

	run := datastructure.AggregationRun{
		ID:           stored.ID,
		CreatedAt:    time.Unix(0, stored.CreatedAt).UTC(),
		Radius:       stored.Radius,
		Strategy:     stored.Strategy,
		SpatialIndex: stored.SpatialIndex,
		InputCount:   stored.InputCount,
		Clusters:     make([]datastructure.AggregatedPoint, len(stored.Clusters)),
	}
	for i, c := range stored.Clusters {
		run.Clusters[i] = datastructure.AggregatedPoint{
			GroupID: c.GroupID,
			Lon:     c.Lon,
			Lat:     c.Lat,
			Members: compress.DecodePostingList(c.Members),
		}
	}
	return run, nil
}
