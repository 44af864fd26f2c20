// Package config provides configuration management for the application
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultRooms is the room list used when HOTEL_ROOMS is not set
const DefaultRooms = "101:2:100,102:3:150,103:4:200"

// HotelConfig holds the hotel name and its fixed room list
type HotelConfig struct {
	Name  string
	Rooms []RoomConfig
}

// RoomConfig describes one room as given in HOTEL_ROOMS
type RoomConfig struct {
	Number        string
	Capacity      int
	PricePerNight float64
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string
}

// RedisConfig holds Redis/Valkey configuration
type RedisConfig struct {
	Enabled bool
	// URI is prioritized if provided, otherwise individual connection parameters are used
	URI       string
	Host      string
	Port      string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
	// TTL for reservation keys (0 means no expiration)
	ReservationTTL time.Duration
}

// LoadDotEnv loads variables from a .env file in the working directory, if present.
// Variables already set in the environment win.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Error loading .env file: %v", err)
	}
}

// GetHotelConfig loads the hotel configuration from environment variables
func GetHotelConfig() (HotelConfig, error) {
	rooms, err := ParseRooms(getEnv("HOTEL_ROOMS", DefaultRooms))
	if err != nil {
		return HotelConfig{}, err
	}

	return HotelConfig{
		Name:  getEnv("HOTEL_NAME", "Example Hotel"),
		Rooms: rooms,
	}, nil
}

// GetServerConfig loads HTTP server configuration from environment variables
func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port: getEnv("PORT", "8080"),
	}
}

// GetRedisConfig loads Redis/Valkey configuration from environment variables
func GetRedisConfig() RedisConfig {
	// Reservations only end through a cancel unless an expiry is asked for
	ttlHours := getEnvInt("REDIS_RESERVATION_TTL_HOURS", 0)

	return RedisConfig{
		Enabled:        getEnvBool("REDIS_ENABLED", false),
		URI:            getEnv("REDIS_URI_ZHOTEL", ""),
		Host:           getEnv("REDIS_HOST_ZHOTEL", getEnv("REDIS_ADDRESS", "localhost")),
		Port:           getEnv("REDIS_PORT_ZHOTEL", "6379"),
		Username:       getEnv("REDIS_USERNAME_ZHOTEL", ""),
		Password:       getEnv("REDIS_PASSWORD_ZHOTEL", getEnv("REDIS_PASSWORD", "")),
		DB:             getEnvInt("REDIS_DB", 0),
		KeyPrefix:      getEnv("REDIS_KEY_PREFIX", "zhotel:"),
		ReservationTTL: time.Duration(ttlHours) * time.Hour,
	}
}

// ParseRooms parses a room list of the form "101:2:100,102:3:150"
// (number:capacity:price per night). Room numbers must be unique.
func ParseRooms(spec string) ([]RoomConfig, error) {
	var rooms []RoomConfig
	seen := make(map[string]struct{})

	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid room entry %q: want number:capacity:price", entry)
		}

		number := strings.TrimSpace(parts[0])
		if number == "" {
			return nil, fmt.Errorf("invalid room entry %q: empty room number", entry)
		}
		if _, dup := seen[number]; dup {
			return nil, fmt.Errorf("invalid room entry %q: duplicate room number", entry)
		}

		capacity, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || capacity <= 0 {
			return nil, fmt.Errorf("invalid room entry %q: capacity must be a positive integer", entry)
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil || price < 0 {
			return nil, fmt.Errorf("invalid room entry %q: price must be a non-negative number", entry)
		}

		seen[number] = struct{}{}
		rooms = append(rooms, RoomConfig{Number: number, Capacity: capacity, PricePerNight: price})
	}

	if len(rooms) == 0 {
		return nil, errors.New("no rooms configured")
	}
	return rooms, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool retrieves a boolean environment variable
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvInt retrieves an integer environment variable
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
