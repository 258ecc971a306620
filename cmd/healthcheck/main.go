// main.go
//
// guardroster: guard, inspection and exercise records service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of guardroster.
// guardroster is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// guardroster is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with guardroster.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/localnerve/guardroster/internal/config"
	"github.com/localnerve/guardroster/internal/services"
	"github.com/localnerve/guardroster/internal/store"
	"github.com/localnerve/guardroster/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result := services.HealthCheckResult{Status: "healthy", Details: map[string]string{}}

	// The memory store lives inside the server process, so only the listener can be probed
	if cfg.StoreBackend != config.BackendMemory {
		repo, err := store.Open(ctx, cfg, nil)
		if err != nil {
			log.Fatalf("Failed to open store: %v", err)
		}
		defer repo.Close()
		result = services.HealthCheck(ctx, cfg, repo, nil)
	}

	if err := utils.PingAPI(cfg.Port); err != nil {
		result.Status = "unhealthy"
		result.Details["api_error"] = err.Error()
		if result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("API ping failed: %v", err)
		} else {
			result.ErrorMessage += fmt.Sprintf("; API ping failed: %v", err)
		}
	}

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
