// Command csvnorm normalises a challenge CSV file in place.
package main

import (
	"os"

	"github.com/custodia-labs/csvnorm/internal/adapters/driven/clock"
	"github.com/custodia-labs/csvnorm/internal/adapters/driven/config/file"
	"github.com/custodia-labs/csvnorm/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/csvnorm/internal/adapters/driving/cli"
	"github.com/custodia-labs/csvnorm/internal/core/domain"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driving"
	"github.com/custodia-labs/csvnorm/internal/core/services"
	"github.com/custodia-labs/csvnorm/internal/normalisers/csvline"
	"github.com/custodia-labs/csvnorm/internal/normalisers/header"
)

func main() {
	files := filesystem.NewOS()

	cli.SetConfig(&cli.Config{
		OpenConfig: func(path string) (driven.ConfigStore, error) {
			store, err := file.NewConfigStore(files.Fs(), path)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
		NewNormaliser: func(settings domain.Settings) driving.CSVNormaliser {
			return services.NewNormaliseService(
				files,
				clock.System{},
				csvline.New(),
				header.New(settings.Header, settings.MinHeaderMatches),
				settings.DefaultPath,
			)
		},
	})

	os.Exit(cli.Execute())
}
