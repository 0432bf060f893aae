package main

import (
	"github.com/urfave/cli/v2"

	catalogRepo "github.com/m04kA/SMC-CanteenService/internal/infra/storage/catalog"
	catalogService "github.com/m04kA/SMC-CanteenService/internal/service/catalog"
	"github.com/m04kA/SMC-CanteenService/internal/service/reservations"
)

// normalize загружает бронирования, переводит старые статусы и названия приёмов пищи
// в текущий формат и сохраняет изменённые записи. Сервер не запускается.
func normalize(c *cli.Context) error {
	cfg, log, err := setup(c)
	if err != nil {
		return err
	}
	defer log.Close()

	catalog, err := catalogRepo.Load(cfg.Catalog.File)
	if err != nil {
		return err
	}

	stop := make(chan struct{})
	defer close(stop)

	stores, closeStorage, err := openStorage(c.Context, cfg, log, nil, stop)
	if err != nil {
		return err
	}
	defer closeStorage()

	venues := catalogService.NewService(catalog, cfg.Booking.ReservationFee, log)
	store := reservations.NewService(stores.reservations, venues, nil, log)

	if err := store.Init(c.Context); err != nil {
		return err
	}

	log.Info("normalize: done")
	return nil
}
