package store

import (
	"context"
	"fmt"

	"github.com/priyam/studytrail/ent"
	"github.com/priyam/studytrail/ent/setting"
)

// settingRepo implements SettingRepo using the ent client.
type settingRepo struct {
	client *ent.Client
}

func (r *settingRepo) Get(ctx context.Context, key string) (string, error) {
	s, err := r.client.Setting.Query().
		Where(setting.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query setting %q: %w", key, err)
	}
	return s.Value, nil
}

func (r *settingRepo) Set(ctx context.Context, key, value string) error {
	existing, err := r.client.Setting.Query().
		Where(setting.Key(key)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query setting %q: %w", key, err)
	}

	if existing != nil {
		_, err = r.client.Setting.UpdateOne(existing).SetValue(value).Save(ctx)
		if err != nil {
			return fmt.Errorf("update setting %q: %w", key, err)
		}
		return nil
	}

	_, err = r.client.Setting.Create().SetKey(key).SetValue(value).Save(ctx)
	if err != nil {
		return fmt.Errorf("save setting %q: %w", key, err)
	}
	return nil
}

func (r *settingRepo) Delete(ctx context.Context, key string) error {
	_, err := r.client.Setting.Delete().
		Where(setting.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete setting %q: %w", key, err)
	}
	return nil
}

// SettingTokenSource adapts a SettingRepo to the TokenSource interface
// consumed by the remote client and the sync queue.
type SettingTokenSource struct {
	Settings SettingRepo
}

// Token returns the stored bearer token, or "" when the learner has not
// authenticated yet.
func (s *SettingTokenSource) Token(ctx context.Context) (string, error) {
	return s.Settings.Get(ctx, TokenKey)
}
