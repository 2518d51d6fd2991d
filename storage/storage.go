package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Scores are uint64 and can exceed BIGINT, so they are stored as
// NUMERIC(20,0) and move through pgx as decimal text.
const createTableSQL = `
CREATE TABLE IF NOT EXISTS scored_play (
	id          UUID PRIMARY KEY,
	played_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	hand_type   TEXT NOT NULL,
	hand_level  INT NOT NULL,
	base_chips  NUMERIC(20,0) NOT NULL,
	base_mult   NUMERIC(20,0) NOT NULL,
	chips       NUMERIC(20,0) NOT NULL,
	mult        NUMERIC(20,0) NOT NULL,
	total       NUMERIC(20,0) NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scored_play_played_at ON scored_play(played_at DESC);
CREATE INDEX IF NOT EXISTS idx_scored_play_hand_type ON scored_play(hand_type);
CREATE TABLE IF NOT EXISTS joker_effect (
	play_id     UUID NOT NULL REFERENCES scored_play(id) ON DELETE CASCADE,
	position    INT NOT NULL,
	joker_id    UUID NOT NULL,
	joker_name  TEXT NOT NULL,
	edition     TEXT NOT NULL DEFAULT '',
	chips_after NUMERIC(20,0) NOT NULL,
	mult_after  NUMERIC(20,0) NOT NULL,
	PRIMARY KEY (play_id, position)
);
CREATE INDEX IF NOT EXISTS idx_joker_effect_joker_name ON joker_effect(joker_name);
`

// Store persists scored plays in Postgres.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore connects to Postgres and ensures the telemetry tables exist.
// If databaseURL is empty, NewStore returns (nil, nil) and no persistence occurs.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	if databaseURL == "" {
		return nil, nil
	}
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	for _, q := range strings.Split(strings.TrimSpace(createTableSQL), ";\n") {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		if _, err := pool.Exec(ctx, q); err != nil {
			pool.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	slog.Info("connected to Postgres", "tag", "storage")
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}

func numeric(v uint64) string { return strconv.FormatUint(v, 10) }

// InsertPlay stores rec and its joker effects in one transaction.
func (s *Store) InsertPlay(ctx context.Context, rec PlayRecord) error {
	if s == nil || s.pool == nil {
		return nil
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO scored_play (id, played_at, hand_type, hand_level, base_chips, base_mult, chips, mult, total)
		VALUES ($1::uuid, $2, $3, $4, $5::numeric, $6::numeric, $7::numeric, $8::numeric, $9::numeric)`,
		rec.ID.String(), rec.PlayedAt, rec.HandType, rec.Level,
		numeric(rec.BaseChips), numeric(rec.BaseMult),
		numeric(rec.Chips), numeric(rec.Mult), numeric(rec.Total),
	)
	if err != nil {
		return fmt.Errorf("insert play %s: %w", rec.ID, err)
	}

	if len(rec.Effects) > 0 {
		batch := &pgx.Batch{}
		for _, e := range rec.Effects {
			batch.Queue(`
				INSERT INTO joker_effect (play_id, position, joker_id, joker_name, edition, chips_after, mult_after)
				VALUES ($1::uuid, $2, $3::uuid, $4, $5, $6::numeric, $7::numeric)`,
				rec.ID.String(), e.Position, e.JokerID.String(), e.JokerName, e.Edition,
				numeric(e.ChipsAfter), numeric(e.MultAfter),
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert effects for play %s: %w", rec.ID, err)
		}
	}

	return tx.Commit(ctx)
}

// ListPlays returns the most recent plays, newest first, with their effects.
func (s *Store) ListPlays(ctx context.Context, limit int) ([]PlayRecord, error) {
	if s == nil || s.pool == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id::text, played_at, hand_type, hand_level,
		       base_chips::text, base_mult::text, chips::text, mult::text, total::text
		FROM scored_play
		ORDER BY played_at DESC, id
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlayRecord
	index := make(map[string]int)
	for rows.Next() {
		var (
			r                                     PlayRecord
			id                                    string
			playedAt                              time.Time
			baseChips, baseMult, chips, mult, tot string
		)
		if err := rows.Scan(&id, &playedAt, &r.HandType, &r.Level, &baseChips, &baseMult, &chips, &mult, &tot); err != nil {
			return nil, err
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		r.PlayedAt = playedAt
		if err := parseNumerics(
			[]string{baseChips, baseMult, chips, mult, tot},
			[]*uint64{&r.BaseChips, &r.BaseMult, &r.Chips, &r.Mult, &r.Total},
		); err != nil {
			return nil, fmt.Errorf("play %s: %w", id, err)
		}
		index[id] = len(out)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(out))
	for id := range index {
		ids = append(ids, id)
	}
	effRows, err := s.pool.Query(ctx, `
		SELECT play_id::text, position, joker_id::text, joker_name, edition, chips_after::text, mult_after::text
		FROM joker_effect
		WHERE play_id::text = ANY($1::text[])
		ORDER BY play_id, position`, ids)
	if err != nil {
		return nil, err
	}
	defer effRows.Close()
	for effRows.Next() {
		var (
			e                   EffectRecord
			playID, jokerID     string
			chipsAfter, multAft string
		)
		if err := effRows.Scan(&playID, &e.Position, &jokerID, &e.JokerName, &e.Edition, &chipsAfter, &multAft); err != nil {
			return nil, err
		}
		if e.JokerID, err = uuid.Parse(jokerID); err != nil {
			return nil, err
		}
		if err := parseNumerics([]string{chipsAfter, multAft}, []*uint64{&e.ChipsAfter, &e.MultAfter}); err != nil {
			return nil, fmt.Errorf("effect %s/%d: %w", playID, e.Position, err)
		}
		i, ok := index[playID]
		if !ok {
			continue
		}
		out[i].Effects = append(out[i].Effects, e)
	}
	return out, effRows.Err()
}

// Summary aggregates all stored plays.
func (s *Store) Summary(ctx context.Context) (*Summary, error) {
	out := &Summary{ByHandType: map[string]int64{}, ByJoker: map[string]int64{}}
	if s == nil || s.pool == nil {
		return out, nil
	}

	var best string
	if err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(MAX(total), 0)::text FROM scored_play`).Scan(&out.Plays, &best); err != nil {
		return nil, err
	}
	if err := parseNumerics([]string{best}, []*uint64{&out.BestTotal}); err != nil {
		return nil, err
	}

	if err := s.countInto(ctx, out.ByHandType, `SELECT hand_type, COUNT(*) FROM scored_play GROUP BY hand_type`); err != nil {
		return nil, err
	}
	if err := s.countInto(ctx, out.ByJoker, `SELECT joker_name, COUNT(*) FROM joker_effect GROUP BY joker_name`); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) countInto(ctx context.Context, dst map[string]int64, query string) error {
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			key string
			n   int64
		)
		if err := rows.Scan(&key, &n); err != nil {
			return err
		}
		dst[key] = n
	}
	return rows.Err()
}

func parseNumerics(src []string, dst []*uint64) error {
	for i, v := range src {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse numeric %q: %w", v, err)
		}
		*dst[i] = n
	}
	return nil
}
