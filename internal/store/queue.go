package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/priyam/studytrail/ent"
	"github.com/priyam/studytrail/ent/syncitem"
)

// queueRepo implements QueueRepo using the ent client. Items are rows
// rather than one serialized blob, so an enqueue landing mid-drain is
// never lost; a drain pass still commits its whole outcome as a single
// transaction.
type queueRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *queueRepo) Append(ctx context.Context, itemType string, payload json.RawMessage) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SyncItem.Create().
		SetSeq(seqNum).
		SetItemType(itemType).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("append queue item: %w", err)
	}
	return seqNum, nil
}

func (r *queueRepo) List(ctx context.Context) ([]QueueItem, error) {
	rows, err := r.client.SyncItem.Query().
		Order(ent.Asc(syncitem.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list queue items: %w", err)
	}

	items := make([]QueueItem, len(rows))
	for i, row := range rows {
		items[i] = QueueItem{
			Seq:        row.Seq,
			Type:       row.ItemType,
			Payload:    row.Payload,
			RetryCount: row.RetryCount,
			CreatedAt:  row.CreatedAt,
		}
	}
	return items, nil
}

func (r *queueRepo) Apply(ctx context.Context, out QueueOutcome) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin queue tx: %w", err)
	}

	gone := make([]int64, 0, len(out.Delivered)+len(out.Dropped))
	gone = append(gone, out.Delivered...)
	gone = append(gone, out.Dropped...)
	if len(gone) > 0 {
		if _, err := tx.SyncItem.Delete().
			Where(syncitem.SeqIn(gone...)).
			Exec(ctx); err != nil {
			return rollback(tx, fmt.Errorf("remove queue items: %w", err))
		}
	}

	for seqNum, count := range out.Retried {
		if _, err := tx.SyncItem.Update().
			Where(syncitem.Seq(seqNum)).
			SetRetryCount(count).
			Save(ctx); err != nil {
			return rollback(tx, fmt.Errorf("update retry count for %d: %w", seqNum, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit queue tx: %w", err)
	}
	return nil
}

// rollback rolls back the transaction and wraps the original error.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback: %v)", err, rerr)
	}
	return err
}
