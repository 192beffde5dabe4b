// Package export writes GeoJSON snapshots of an owner's pins to a blob bucket.
package export

import (
	"context"
	"encoding/json"
	"log/slog"
	"path"
	"time"

	"pinmap/config"
	"pinmap/internal/domain/entity"
	"pinmap/internal/domain/service"
	"pinmap/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

const contentType = "application/geo+json"

// Params defines the dependencies of the exporter.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// GeoJSONExporter implements service.SnapshotExporter on a gocloud bucket.
type GeoJSONExporter struct {
	bucket *blob.Bucket
	prefix string
	now    func() time.Time
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.SnapshotExporter, error) {
	bucket, err := blob.OpenBucket(context.Background(), params.Config.Export.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open export bucket %q", params.Config.Export.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Export bucket opened", slog.String("url", params.Config.Export.BucketURL))

	return NewGeoJSONExporter(bucket, params.Config.Export.Prefix), nil
}

// NewGeoJSONExporter writes snapshots under prefix in bucket.
func NewGeoJSONExporter(bucket *blob.Bucket, prefix string) *GeoJSONExporter {
	return &GeoJSONExporter{bucket: bucket, prefix: prefix, now: time.Now}
}

// Export writes pins as a FeatureCollection and returns the object key.
func (e *GeoJSONExporter) Export(ctx context.Context, ownerID uuid.UUID, pins []entity.Pin) (string, error) {
	raw, err := json.Marshal(FeatureCollection(pins))
	if err != nil {
		return "", errors.Wrap(err, "failed to encode snapshot")
	}

	key := path.Join(e.prefix, ownerID.String(), e.now().UTC().Format("20060102T150405.000Z")+".geojson")
	if err := e.bucket.WriteAll(ctx, key, raw, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "failed to write snapshot %s", key)
	}

	return key, nil
}

// FeatureCollection converts pins into point features carrying the pin fields.
func FeatureCollection(pins []entity.Pin) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, pin := range pins {
		info := pin.Category.Info()

		f := geojson.NewFeature(pin.Coordinate.Point())
		f.ID = pin.ID.String()
		f.Properties["title"] = pin.Title
		f.Properties["description"] = pin.Description
		f.Properties["category"] = pin.Category.String()
		f.Properties["marker-color"] = info.Color
		f.Properties["icon"] = info.Icon
		f.Properties["is_favorite"] = pin.IsFavorite
		f.Properties["created_at"] = pin.CreatedAt.UTC().Format(time.RFC3339)
		fc.Append(f)
	}

	return fc
}
