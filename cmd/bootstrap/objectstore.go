package bootstrap

import (
	"context"

	"storezee/internal/infra/objectstore"
	"storezee/internal/pkg/config"
	"storezee/internal/usecase/commands"

	"go.uber.org/fx"
)

var ObjectStoreModule = fx.Module("objectstore",
	fx.Provide(
		NewObjectStore,
	),
)

func NewObjectStore(cfg config.Config) (commands.ObjectStore, error) {
	client, err := objectstore.NewS3Client(context.Background(), cfg.S3)
	if err != nil {
		return nil, err
	}
	return objectstore.NewS3Store(client, cfg.S3), nil
}
