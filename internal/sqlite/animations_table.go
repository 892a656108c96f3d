package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/mesh-intelligence/tweenkit/pkg/types"
)

// record is one stored animation and its revision. The revision increases on
// every update and keys the render memo.
type record struct {
	animation types.Animation
	revision  int64
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

const selectRecord = `SELECT body, revision FROM animations`

func encodeBody(a types.Animation) (string, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("encoding animation %s: %w", a.Common().ID, err)
	}
	return string(data), nil
}

// insertAnimation appends a after the last stored animation.
func insertAnimation(db execer, a types.Animation) error {
	body, err := encodeBody(a)
	if err != nil {
		return err
	}
	base := a.Common()
	_, err = db.Exec(`INSERT INTO animations
    (animation_id, animation_type, position, label, target_selector, body, revision)
    VALUES (?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM animations), ?, ?, ?, 1)`,
		base.ID, string(base.Type), base.Label, base.TargetSelector, body)
	if err != nil {
		return fmt.Errorf("inserting animation %s: %w", base.ID, err)
	}
	return nil
}

// updateAnimation stores a over the row with the same ID and bumps its
// revision.
func updateAnimation(db execer, a types.Animation) error {
	body, err := encodeBody(a)
	if err != nil {
		return err
	}
	base := a.Common()
	res, err := db.Exec(`UPDATE animations
    SET label = ?, target_selector = ?, body = ?, revision = revision + 1
    WHERE animation_id = ?`,
		base.Label, base.TargetSelector, body, base.ID)
	if err != nil {
		return fmt.Errorf("updating animation %s: %w", base.ID, err)
	}
	return requireRow(res)
}

func deleteAnimation(db execer, id string) error {
	res, err := db.Exec(`DELETE FROM animations WHERE animation_id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting animation %s: %w", id, err)
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// replaceAnimations swaps the whole collection in one transaction.
func replaceAnimations(db *sql.DB, list []types.Animation) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM animations`); err != nil {
		return fmt.Errorf("clearing animations: %w", err)
	}
	for _, a := range list {
		if err := insertAnimation(tx, a); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func getRecord(db *sql.DB, id string) (record, error) {
	row := db.QueryRow(selectRecord+` WHERE animation_id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return record{}, types.ErrNotFound
	}
	return rec, err
}

func getAnimation(db *sql.DB, id string) (types.Animation, error) {
	rec, err := getRecord(db, id)
	if err != nil {
		return nil, err
	}
	return rec.animation, nil
}

func listRecords(db *sql.DB) ([]record, error) {
	rows, err := db.Query(selectRecord + ` ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing animations: %w", err)
	}
	defer rows.Close()

	var out []record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func listAnimations(db *sql.DB) ([]types.Animation, error) {
	recs, err := listRecords(db)
	if err != nil {
		return nil, err
	}
	out := make([]types.Animation, len(recs))
	for i, rec := range recs {
		out[i] = rec.animation
	}
	return out, nil
}

// firstAnimationID returns the ID at the lowest position, or "" when empty.
func firstAnimationID(db *sql.DB) (string, error) {
	var id string
	err := db.QueryRow(`SELECT animation_id FROM animations ORDER BY position LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return id, err
}

type scanner interface {
	Scan(dest ...any) error
}

// scanRecord decodes a body/revision row. Decoding yields a fresh value, so
// callers never share state with the store.
func scanRecord(s scanner) (record, error) {
	var body string
	var rec record
	if err := s.Scan(&body, &rec.revision); err != nil {
		return record{}, err
	}
	a, err := types.DecodeAnimation([]byte(body))
	if err != nil {
		return record{}, fmt.Errorf("decoding stored animation: %w", err)
	}
	rec.animation = a
	return rec, nil
}
