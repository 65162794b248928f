package Controllers

import (
	"bufio"
	"encoding/json"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"CarWash/middleware"
)

const logFilePath = "logs/requests.log"

// GetLogs returns request log entries with pagination and date filtering.
func GetLogs(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "50"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 50
	}

	dateFrom, dateTo, err := parseLogDateRange(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	entries, err := readLogFile(dateFrom, dateTo)
	if err != nil {
		log.Printf("Error reading logs: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to read logs"})
	}

	if pathFilter := c.Query("path"); pathFilter != "" {
		var filtered []middleware.LogData
		for _, e := range entries {
			if strings.Contains(strings.ToLower(e.Path), strings.ToLower(pathFilter)) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	// Newest first
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	total := len(entries)
	totalPages := (total + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return c.JSON(fiber.Map{
		"logs":        entries[start:end],
		"total_logs":  total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": totalPages,
		"date_from":   dateFrom,
		"date_to":     dateTo,
	})
}

// GetLogStats summarizes request volume, latency and status mix for a
// date range.
func GetLogStats(c *fiber.Ctx) error {
	dateFrom, dateTo, err := parseLogDateRange(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	entries, err := readLogFile(dateFrom, dateTo)
	if err != nil {
		log.Printf("Error reading logs: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to read logs"})
	}

	var successful, failed int
	var totalLatency, minLatency, maxLatency time.Duration
	statusStats := make(map[int]int)
	pathStats := make(map[string]int)

	for i, e := range entries {
		if e.Status >= 200 && e.Status < 300 {
			successful++
		} else if e.Status >= 400 {
			failed++
		}
		totalLatency += e.Latency
		if i == 0 || e.Latency < minLatency {
			minLatency = e.Latency
		}
		if e.Latency > maxLatency {
			maxLatency = e.Latency
		}
		statusStats[e.Status]++
		pathStats[e.Path]++
	}

	avgLatency := time.Duration(0)
	successRate := 0.0
	if len(entries) > 0 {
		avgLatency = totalLatency / time.Duration(len(entries))
		successRate = float64(successful) / float64(len(entries)) * 100
	}

	return c.JSON(fiber.Map{
		"total_requests":      len(entries),
		"successful_requests": successful,
		"error_requests":      failed,
		"success_rate":        successRate,
		"avg_latency_ms":      float64(avgLatency.Microseconds()) / 1000.0,
		"min_latency_ms":      float64(minLatency.Microseconds()) / 1000.0,
		"max_latency_ms":      float64(maxLatency.Microseconds()) / 1000.0,
		"status_stats":        statusStats,
		"path_stats":          pathStats,
		"date_from":           dateFrom,
		"date_to":             dateTo,
	})
}

// parseLogDateRange reads date_from/date_to query params, defaulting to
// today when neither is given.
func parseLogDateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	dateFromStr := c.Query("date_from")
	dateToStr := c.Query("date_to")

	if dateFromStr == "" && dateToStr == "" {
		now := time.Now()
		from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return from, from.Add(24*time.Hour - time.Nanosecond), nil
	}

	from := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Now()
	if dateFromStr != "" {
		parsed, err := time.Parse("2006-01-02", dateFromStr)
		if err != nil {
			return from, to, fiber.NewError(400, "Invalid date_from format. Use YYYY-MM-DD")
		}
		from = parsed
	}
	if dateToStr != "" {
		parsed, err := time.Parse("2006-01-02", dateToStr)
		if err != nil {
			return from, to, fiber.NewError(400, "Invalid date_to format. Use YYYY-MM-DD")
		}
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}

// readLogFile parses the JSON-line request log, keeping entries inside
// the date range. Lines that fail to parse are skipped.
func readLogFile(dateFrom, dateTo time.Time) ([]middleware.LogData, error) {
	file, err := os.Open(logFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var entries []middleware.LogData
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var entry middleware.LogData
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		if entry.Timestamp.After(dateFrom) && entry.Timestamp.Before(dateTo) {
			entries = append(entries, entry)
		}
	}
	return entries, scanner.Err()
}
