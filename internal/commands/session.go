package commands

import (
	"errors"
	"fmt"

	"github.com/Stefasaur/bank-bee-csv/internal/category"
	"github.com/Stefasaur/bank-bee-csv/internal/config"
	"github.com/Stefasaur/bank-bee-csv/internal/ingest"
	"github.com/Stefasaur/bank-bee-csv/internal/session"
)

// configFile is looked up in the working directory; absence is fine.
const configFile = "bankbee.yaml"

func loadConfig() *config.Config {
	cfg, err := config.Load(configFile)
	if err != nil {
		return config.Default()
	}
	return cfg
}

// loadSession selects a bank, ingests the statement file, and runs the
// pipeline. An empty bankID falls back to the config file's default_bank.
func loadSession(bankID, path string) (*session.Session, error) {
	cfg := loadConfig()
	if bankID == "" {
		bankID = cfg.DefaultBank
	}
	if bankID == "" {
		return nil, errors.New("no bank selected: pass --bank or set default_bank in bankbee.yaml")
	}

	sess := session.New()
	if cfg.RulesPath != "" {
		rules, err := category.Load(cfg.RulesPath)
		if err != nil {
			return nil, fmt.Errorf("loading category rules: %w", err)
		}
		sess.SetRules(rules)
	}
	if err := sess.SelectBank(bankID); err != nil {
		return nil, err
	}

	sheets, err := ingest.Open(path)
	if err != nil {
		return nil, err
	}
	if err := sess.Load(sheets); err != nil {
		return nil, err
	}
	return sess, nil
}
