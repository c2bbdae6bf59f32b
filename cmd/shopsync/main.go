package main

import (
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/wellywell/shopsync/internal/config"
	"github.com/wellywell/shopsync/internal/db"
	"github.com/wellywell/shopsync/internal/handlers"
	"github.com/wellywell/shopsync/internal/order"
	"github.com/wellywell/shopsync/internal/router"
	"github.com/wellywell/shopsync/internal/scheduler"
	"github.com/wellywell/shopsync/internal/shopapi"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	database, err := db.NewDatabase(conf.DatabaseDSN)
	if err != nil {
		panic(err)
	}

	client := shopapi.NewClient(conf.ShopAPIURL, conf.ShopAPIKey, conf.ShopAPIVersion)

	upserter := order.NewUpserter(database)
	syncer := order.NewSyncer(client, upserter)
	syncer.SetProgressFunc(func(current int, total int) {
		logger.Debugf("Sync progress %d/%d", current, total)
	})
	syncer.SetPageProgressFunc(func(current int, total int) {
		logger.Infof("Sweep page %d/%d done", current, total)
	})

	location, err := time.LoadLocation(conf.SyncTimezone)
	if err != nil {
		logger.Warningf("Unknown timezone %q, falling back to UTC", conf.SyncTimezone)
		location = time.UTC
	}

	sched := scheduler.NewScheduler(syncer, client,
		conf.SyncIntervalMinutes, conf.SyncLookbackMinutes, conf.UpdateExisting, location)
	sched.Start()
	defer sched.Stop()

	handlerSet := handlers.NewHandlerSet(syncer, sched, client, database)

	r := router.NewRouter(conf.RunAddress, handlerSet)

	err = r.ListenAndServe()
	if err != nil {
		panic(err)
	}

}
