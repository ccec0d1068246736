package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	mw "github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/middlewares"
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/api/router"
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/repository/sqlconnect"
	storage "github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/storage/s3"
	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/pkg/utils"
)

func main() {
	_ = godotenv.Load(".env")

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":3000"
	}

	db, err := sqlconnect.ConnectDB()
	if err != nil {
		log.Fatalf("Postgres connection failed: %v", err)
	}
	defer db.Close()
	fmt.Println("Connected to Postgres")

	// Redis is optional: without it, stats are computed fresh per request
	// and rate limiting is skipped.
	rdb := connectRedis()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	s3c, err := storage.NewClient(ctx)
	cancel()
	if err != nil {
		log.Fatalf("S3 client init failed: %v", err)
	}
	if s3c == nil {
		log.Println("AWS_BUCKET not set; cover endpoints disabled")
	}

	chain := []utils.Middleware{
		mw.Cors,
		mw.ResponseTimeMiddleware,
		mw.RequestID,
		mw.HPP,
		mw.BodySizeLimit,
		mw.Compression,
		mw.SecurityHeaders,
		mw.Recovery,
	}
	if rdb != nil {
		tb := mw.NewRedisTokenBucket(rdb, 5, 20, mw.PerIPKey("tb"))
		sw := mw.NewRedisSlidingWindow(rdb, 3000, 60*time.Minute, mw.PerIPKey("sw"))
		chain = append(chain, tb.Middleware, sw.Middleware)
	}

	handler := utils.ApplyMiddleware(router.Router(db, rdb, s3c), chain...)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	cert, key := os.Getenv("TLS_CERT"), os.Getenv("TLS_KEY")
	fmt.Println("Server is running on", addr)
	if cert != "" && key != "" {
		server.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		err = server.ListenAndServeTLS(cert, key)
	} else {
		err = server.ListenAndServe()
	}
	if err != nil {
		log.Fatalln("Error starting server:", err)
	}
}

func connectRedis() *redis.Client {
	var rdb *redis.Client

	if url := os.Getenv("REDIS_URL"); url != "" {
		opt, err := redis.ParseURL(url) // e.g. rediss://default:<token>@host:port
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		if opt.TLSConfig == nil {
			opt.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		opt.DialTimeout = 5 * time.Second
		opt.ReadTimeout = 1 * time.Second
		opt.WriteTimeout = 1 * time.Second
		rdb = redis.NewClient(opt)
	} else if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         addr,
			Username:     os.Getenv("REDIS_USER"),
			Password:     os.Getenv("REDIS_PASSWORD"),
			DB:           0,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
	} else {
		log.Println("no Redis configured; caching and rate limiting disabled")
		return nil
	}

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}
	fmt.Println("Connected to Redis")
	return rdb
}
