package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"visitordash/config"
	"visitordash/dataset"
)

func main() {
	cfg := config.GetConfig()

	load := func() (*dataset.Dataset, error) {
		return dataset.Load(dataset.Sources{
			ExcelPath:       cfg.ExcelPath,
			SummaryPath:     cfg.SummaryPath,
			ExpenditurePath: cfg.ExpenditurePath,
		})
	}

	// Preload once so bad paths or schema drift fail at startup, not on
	// the first page view.
	ds, err := load()
	if err != nil {
		log.Fatalln("cannot load source tables:", err)
	}
	fmt.Printf("loaded summary (%d rows), expenditure (%d rows)\n",
		ds.Summary.Len(), ds.Expenditure.Len())
	fmt.Println(GenerateCategoryTable(ds.Summary))

	store := NewSessionStore(cfg.SessionTTL, load)
	server := NewServer(store, dashboardViews(cfg))

	go func() {
		for {
			time.Sleep(time.Minute)
			if n := store.Sweep(time.Now()); n > 0 {
				log.Printf("evicted %d expired sessions, %d live", n, store.Len())
			}
		}
	}()

	fmt.Println("listen on: http://localhost" + cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, server.Routes()); err != nil {
		log.Fatalln("Error starting server:", err)
	}
}
