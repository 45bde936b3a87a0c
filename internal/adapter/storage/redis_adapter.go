package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/partstore/internal/core/domain"
)

const (
	partKeyPrefix = "part:"
	partIndexKey  = "parts:index"
	idField       = "_id"
)

// Update values are tagged so that an empty string and null stay distinct:
// "s:<value>" sets the field, "n" removes it.
var updatePartScript = redis.NewScript(`
local key = KEYS[1]

if redis.call('EXISTS', key) == 0 then
	return 0
end

for i = 1, #ARGV, 2 do
	local field = ARGV[i]
	local value = ARGV[i + 1]
	if value == 'n' then
		redis.call('HDEL', key, field)
	else
		redis.call('HSET', key, field, string.sub(value, 3))
	end
end

return 1
`)

var deletePartScript = redis.NewScript(`
local removed = redis.call('DEL', KEYS[1])
redis.call('ZREM', KEYS[2], ARGV[1])
return removed
`)

// RedisAdapter keeps each part as a hash and orders ids in a sorted set. All
// members share score 0, so the set is ordered by id alone.
type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) CreatePart(ctx context.Context, part domain.Part) error {
	values := map[string]interface{}{idField: part.ID}
	for field, v := range partColumnsOf(part) {
		values[field] = v
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, partKeyPrefix+part.ID, values)
		pipe.ZAdd(ctx, partIndexKey, redis.Z{Score: 0, Member: part.ID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("save part: %w", err)
	}

	return nil
}

func (r *RedisAdapter) ListParts(ctx context.Context) ([]domain.Part, error) {
	ids, err := r.client.ZRevRange(ctx, partIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}

	parts := []domain.Part{}
	if len(ids) == 0 {
		return parts, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, partKeyPrefix+id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("read parts: %w", err)
	}

	for i, cmd := range cmds {
		values := cmd.Val()
		// deleted between the index read and the hash read
		if len(values) == 0 {
			continue
		}
		part, err := partFromHash(ids[i], values)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}

	return parts, nil
}

func (r *RedisAdapter) UpdatePart(ctx context.Context, id string, fields domain.Fields) (int64, error) {
	var args []interface{}
	for field, v := range fields.Columns() {
		if v == nil {
			args = append(args, field, "n")
			continue
		}
		args = append(args, field, "s:"+formatValue(v))
	}

	n, err := updatePartScript.Run(ctx, r.client, []string{partKeyPrefix + id}, args...).Int64()
	if err != nil {
		return 0, fmt.Errorf("update part: %w", err)
	}

	return n, nil
}

func (r *RedisAdapter) DeletePart(ctx context.Context, id string) (int64, error) {
	n, err := deletePartScript.Run(ctx, r.client, []string{partKeyPrefix + id, partIndexKey}, id).Int64()
	if err != nil {
		return 0, fmt.Errorf("delete part: %w", err)
	}

	return n, nil
}

func (r *RedisAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisAdapter) Close() error {
	return r.client.Close()
}

func partColumnsOf(part domain.Part) map[string]string {
	out := make(map[string]string, 5)
	if part.Type != nil {
		out[domain.FieldType] = *part.Type
	}
	if part.Brand != nil {
		out[domain.FieldBrand] = *part.Brand
	}
	if part.Model != nil {
		out[domain.FieldModel] = *part.Model
	}
	if part.Quantity != nil {
		out[domain.FieldQuantity] = formatValue(*part.Quantity)
	}
	if part.Price != nil {
		out[domain.FieldPrice] = formatValue(*part.Price)
	}
	return out
}

func partFromHash(id string, values map[string]string) (domain.Part, error) {
	p := domain.Part{ID: id}
	if v, ok := values[domain.FieldType]; ok {
		p.Type = &v
	}
	if v, ok := values[domain.FieldBrand]; ok {
		p.Brand = &v
	}
	if v, ok := values[domain.FieldModel]; ok {
		p.Model = &v
	}

	var err error
	if p.Quantity, err = parseHashFloat(values, domain.FieldQuantity); err != nil {
		return domain.Part{}, fmt.Errorf("part %s: %w", id, err)
	}
	if p.Price, err = parseHashFloat(values, domain.FieldPrice); err != nil {
		return domain.Part{}, fmt.Errorf("part %s: %w", id, err)
	}

	return p, nil
}

func parseHashFloat(values map[string]string, field string) (*float64, error) {
	v, ok := values[field]
	if !ok {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", field, err)
	}
	return &f, nil
}

func formatValue(v any) string {
	switch t := v.(type) {
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
