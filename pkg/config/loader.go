package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// cache holds one parsed value per config type.
	cache sync.Map // reflect.Type -> *entry

	dotenvOnce sync.Once
)

type entry struct {
	once  sync.Once
	value any
	err   error
}

// Load fills v from the process environment. The first call of the process
// also reads a .env file from the working directory if one exists.
// Every config type is parsed once; later calls return a copy of the cached value.
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})

	e, _ := cache.LoadOrStore(typeOf[T](), &entry{})
	ent := e.(*entry)
	ent.once.Do(func() {
		// Parse into a copy so that caller-side defaults set before Load are honoured
		// for the first caller and shared with the rest.
		parsed := *v
		if err := env.Parse(&parsed); err != nil {
			ent.err = errors.Join(ErrParsingConfig, err)
			return
		}
		ent.value = parsed
	})

	if ent.err != nil {
		return ent.err
	}
	cached, ok := ent.value.(T)
	if !ok {
		return ErrConfigNotLoaded
	}
	*v = cached
	return nil
}

// MustLoad is like Load but panics on failure. Use it for configuration a
// service cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadFiles fills v from the given dotenv files layered over the process
// environment; later files win. Nothing is cached and the process environment
// is not modified.
func LoadFiles[T any](v *T, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, val, ok := strings.Cut(kv, "="); ok {
			vars[k] = val
		}
	}
	for _, file := range files {
		values, err := godotenv.Read(file)
		if err != nil {
			return errors.Join(ErrReadingFile, err)
		}
		for k, val := range values {
			vars[k] = val
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Environment: vars}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
