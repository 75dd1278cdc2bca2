package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be between 4 and 31 (got %d)", c.Auth.PasswordHashCost)
	}

	if c.Forecast.BaseURL == "" {
		return fmt.Errorf("forecast.base_url must not be empty")
	}
	if c.Forecast.Timeout <= 0 {
		return fmt.Errorf("forecast.timeout must be > 0 (got %v)", c.Forecast.Timeout)
	}

	if err := c.Inventory.validate(); err != nil {
		return fmt.Errorf("inventory: %w", err)
	}

	return nil
}

func (c *InventoryConfig) validate() error {
	if c.LookbackDays <= 0 {
		return fmt.Errorf("lookback_days must be > 0 (got %d)", c.LookbackDays)
	}
	if c.SafetyBufferRatio < 0 {
		return fmt.Errorf("safety_buffer_ratio must be >= 0 (got %v)", c.SafetyBufferRatio)
	}
	if c.ActivityWindowDays <= 0 {
		return fmt.Errorf("activity_window_days must be > 0 (got %d)", c.ActivityWindowDays)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("sweep_interval must be > 0 (got %v)", c.SweepInterval)
	}
	if c.SweepRetryCooldown <= 0 {
		return fmt.Errorf("sweep_retry_cooldown must be > 0 (got %v)", c.SweepRetryCooldown)
	}
	if c.DefaultSupplierLeadDays < 0 {
		return fmt.Errorf("default_supplier_lead_days must be >= 0 (got %d)", c.DefaultSupplierLeadDays)
	}
	return nil
}
