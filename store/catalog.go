// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/AngelStivenToro/OgAwards/voting"
)

// ListAwards implements voting.CatalogStore. Awards and their nominees
// come back in catalog (display) order.
func (s *Store) ListAwards(ctx context.Context) ([]voting.Award, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, category_label
		FROM award
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query awards: %w", err)
	}
	defer rows.Close()

	awards := []voting.Award{}
	index := make(map[string]int)
	for rows.Next() {
		var a voting.Award
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Category); err != nil {
			return nil, fmt.Errorf("failed to scan award: %w", err)
		}
		index[a.ID] = len(awards)
		awards = append(awards, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate awards: %w", err)
	}

	nomRows, err := s.db.QueryContext(ctx, `
		SELECT award_id, id, name, description, media_type, media_url, media_title, media_content
		FROM nominee
		ORDER BY award_id, position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query nominees: %w", err)
	}
	defer nomRows.Close()

	for nomRows.Next() {
		var awardID string
		nominee, err := scanNominee(nomRows, &awardID)
		if err != nil {
			return nil, err
		}
		if i, ok := index[awardID]; ok {
			awards[i].Nominees = append(awards[i].Nominees, nominee)
		}
	}
	if err := nomRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate nominees: %w", err)
	}

	return awards, nil
}

// GetAward implements voting.CatalogStore. Returns (nil, nil) for an
// unknown award ID.
func (s *Store) GetAward(ctx context.Context, awardID string) (*voting.Award, error) {
	var award voting.Award
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, category_label
		FROM award
		WHERE id = $1
	`, awardID).Scan(&award.ID, &award.Title, &award.Description, &award.Category)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query award: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT award_id, id, name, description, media_type, media_url, media_title, media_content
		FROM nominee
		WHERE award_id = $1
		ORDER BY position
	`, awardID)
	if err != nil {
		return nil, fmt.Errorf("failed to query nominees: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ignored string
		nominee, err := scanNominee(rows, &ignored)
		if err != nil {
			return nil, err
		}
		award.Nominees = append(award.Nominees, nominee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate nominees: %w", err)
	}

	return &award, nil
}

func scanNominee(rows *sql.Rows, awardID *string) (voting.Nominee, error) {
	var n voting.Nominee
	var mediaType, mediaURL, mediaTitle, mediaContent string
	err := rows.Scan(awardID, &n.ID, &n.Name, &n.Description,
		&mediaType, &mediaURL, &mediaTitle, &mediaContent)
	if err != nil {
		return voting.Nominee{}, fmt.Errorf("failed to scan nominee: %w", err)
	}
	if mediaType != "" {
		n.Media = &voting.Media{
			Type:    mediaType,
			URL:     mediaURL,
			Title:   mediaTitle,
			Content: mediaContent,
		}
	}
	return n, nil
}

// CountAwards reports how many awards are seeded.
func (s *Store) CountAwards(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM award`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count awards: %w", err)
	}
	return count, nil
}

// SeedAwards inserts a catalog in the given display order. Call once on
// an empty catalog; the voting rules assume awards never change during
// an active voting period.
func (s *Store) SeedAwards(ctx context.Context, awards []voting.Award) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for pos, award := range awards {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO award (id, title, description, category_label, position)
			VALUES ($1, $2, $3, $4, $5)
		`, award.ID, award.Title, award.Description, award.Category, pos)
		if err != nil {
			return fmt.Errorf("failed to insert award %s: %w", award.ID, err)
		}

		for npos, nominee := range award.Nominees {
			var mediaType, mediaURL, mediaTitle, mediaContent string
			if nominee.Media != nil {
				mediaType = nominee.Media.Type
				mediaURL = nominee.Media.URL
				mediaTitle = nominee.Media.Title
				mediaContent = nominee.Media.Content
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO nominee (id, award_id, name, description, media_type, media_url, media_title, media_content, position)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			`, nominee.ID, award.ID, nominee.Name, nominee.Description,
				mediaType, mediaURL, mediaTitle, mediaContent, npos)
			if err != nil {
				return fmt.Errorf("failed to insert nominee %s: %w", nominee.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

// SeedFromFile loads a JSON award catalog and seeds it if the catalog is
// still empty. Safe across restarts.
func (s *Store) SeedFromFile(ctx context.Context, path string) error {
	count, err := s.CountAwards(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read awards file: %w", err)
	}

	var awards []voting.Award
	if err := json.Unmarshal(data, &awards); err != nil {
		return fmt.Errorf("failed to parse awards file: %w", err)
	}

	return s.SeedAwards(ctx, awards)
}
