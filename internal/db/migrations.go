package db

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var procedureStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE OR REPLACE FUNCTION register_lead_distribution(
		p_franchise_id uuid,
		p_franchise_phone_id uuid,
		p_leads_count integer,
		p_server_id uuid
	) RETURNS uuid
	LANGUAGE plpgsql AS $fn$
	DECLARE
		v_id uuid;
	BEGIN
		INSERT INTO lead_distributions (id, franchise_id, franchise_phone_id, leads_count, server_id, date, created_at, updated_at)
		VALUES (gen_random_uuid(), p_franchise_id, p_franchise_phone_id, p_leads_count, p_server_id, CURRENT_DATE, NOW(), NOW())
		RETURNING id INTO v_id;
		RETURN v_id;
	END;
	$fn$;`,
	`CREATE OR REPLACE FUNCTION activate_ad_in_server(
		p_ad_id uuid,
		p_api_id uuid,
		p_daily_budget numeric,
		p_server_id uuid
	) RETURNS uuid
	LANGUAGE plpgsql AS $fn$
	DECLARE
		v_id uuid;
	BEGIN
		INSERT INTO server_ads (id, server_id, ad_id, api_id, daily_budget, leads, loads, spent, is_active, created_at, updated_at)
		VALUES (gen_random_uuid(), p_server_id, p_ad_id, p_api_id, p_daily_budget, 0, 0, 0, TRUE, NOW(), NOW())
		RETURNING id INTO v_id;
		RETURN v_id;
	END;
	$fn$;`,
	`CREATE OR REPLACE FUNCTION update_server_ad_metrics(
		p_server_ad_id uuid,
		p_leads integer,
		p_loads integer,
		p_spent numeric
	) RETURNS void
	LANGUAGE plpgsql AS $fn$
	BEGIN
		UPDATE server_ads
		SET leads = p_leads, loads = p_loads, spent = p_spent, updated_at = NOW()
		WHERE id = p_server_ad_id;
	END;
	$fn$;`,
}

func viewStatement(v View) string {
	checks := make([]string, 0, len(v.Requires))
	for _, table := range v.Requires {
		checks = append(checks, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = '%s')", table))
	}
	return fmt.Sprintf(`DO $$
	BEGIN
		IF %s THEN
			CREATE OR REPLACE VIEW %s AS %s;
		END IF;
	END
	$$;`, strings.Join(checks, " AND\n\t\t   "), v.Name, v.Query)
}

func migrationStatements() []string {
	statements := make([]string, 0, len(procedureStatements)+len(Views))
	statements = append(statements, procedureStatements...)
	for _, v := range Views {
		statements = append(statements, viewStatement(v))
	}
	return statements
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements() {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
