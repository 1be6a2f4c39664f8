package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/imscore/sh-profile/cache"
	"github.com/imscore/sh-profile/config"
	"github.com/imscore/sh-profile/internal"
	"github.com/imscore/sh-profile/render"
	"github.com/imscore/sh-profile/server"
	"github.com/imscore/sh-profile/store"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	format := flag.String("format", "xml", "xml|json")
	impi := flag.String("impi", "", "private identity to render (oneshot; defaults to first provisioned)")
	subscribers := flag.String("subscribers", "", "subscriber provisioning YAML (overrides config)")
	configPath := flag.String("config", "", "config file path (default config.yml)")
	flag.Parse()

	internal.InitLogging()
	var err error
	if *configPath != "" {
		err = config.LoadAppConfig(*configPath)
	} else {
		err = config.LoadAppConfig()
	}
	if err != nil {
		log.Fatalf("unable to load config: %v", err)
	}

	subFile := config.Config.Store.SubscribersFile
	if *subscribers != "" {
		subFile = *subscribers
	}
	if subFile == "" {
		log.Fatalf("no subscriber provisioning file configured")
	}
	st, err := store.NewStoreFromFile(subFile)
	if err != nil {
		log.Fatalf("unable to load subscribers from %s: %v", subFile, err)
	}
	log.Printf("loaded %d subscribers from %s", st.Len(), subFile)

	r := render.NewRenderer(render.Options{
		VendorExtensions:     config.Config.Renderer.VendorExtensions,
		DefaultAgeOfLocation: config.Config.Renderer.DefaultAgeOfLocation,
	})
	c := cache.New(r, st)

	switch *mode {
	case "oneshot":
		f := strings.TrimSpace(strings.ToLower(*format))
		if f != cache.FormatXML && f != cache.FormatJSON {
			log.Fatalf("unsupported format %q", *format)
		}
		id := *impi
		if id == "" {
			ids := st.AllIdentities()
			if len(ids) == 0 {
				log.Fatalf("provisioning file holds no subscribers")
			}
			id = ids[0]
		}
		buf, err := c.GetProfile(id, f)
		if err != nil {
			log.Fatalf("unable to render profile for %s: %v", id, err)
		}
		fmt.Println(string(buf))
	case "serve":
		api := &server.API{Cache: c, Store: st}
		server.StartServer(config.Config.Server.Port, api)
		server.HandleGracefulShutdown()
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}
}
