package service

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"writing-dashboard/pkg/model"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

const (
	columnLabel = "label"
	columnText  = "processed_text"
	columnTopic = "topic"
)

type DatasetLoader struct {
	db *sql.DB
}

func NewDatasetLoader(db *sql.DB) *DatasetLoader {
	return &DatasetLoader{db: db}
}

// Load 通过 duckdb 读取数据集文件，并根据是否存在 topic 列决定数据集类型
func (l *DatasetLoader) Load(ctx context.Context, path string) (*model.Dataset, error) {
	if l.db == nil {
		return nil, errors.New("DuckDB 连接未初始化")
	}
	source, err := readerExpr(path)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	columns, err := l.describe(ctx, source)
	if err != nil {
		return nil, errors.Wrapf(err, "读取数据集 %s 的列信息失败", path)
	}
	for _, required := range []string{columnLabel, columnText} {
		if _, ok := columns[required]; !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "%s: %s", path, required)
		}
	}
	_, hasTopic := columns[columnTopic]

	selectCols := []string{columnLabel, columnText}
	if hasTopic {
		selectCols = append(selectCols, columnTopic)
	}
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(selectCols, ", "), source)

	rows, err := l.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, "查询数据集 %s 失败", path)
	}
	defer rows.Close()

	records := make([]model.Record, 0)
	for rows.Next() {
		var label, text, topic any
		dest := []any{&label, &text}
		if hasTopic {
			dest = append(dest, &topic)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, errors.Wrapf(err, "扫描第 %d 行失败", len(records))
		}

		record, err := toRecord(len(records), label, text, topic)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "读取数据集 %s 失败", path)
	}

	zap.S().Infof("加载数据集 %s 完成: %d 条记录, 包含 topic 列: %t, 耗时 %s", path, len(records), hasTopic, time.Since(startTime))
	if hasTopic {
		return model.NewTopickedDataset(records), nil
	}
	return model.NewUntopickedDataset(records), nil
}

// describe 返回数据集的列名集合
func (l *DatasetLoader) describe(ctx context.Context, source string) (map[string]struct{}, error) {
	rows, err := l.db.QueryContext(ctx, "DESCRIBE SELECT * FROM "+source)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	columns := make(map[string]struct{})
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		// 第一列为 column_name
		columns[cast.ToString(values[0])] = struct{}{}
	}
	return columns, rows.Err()
}

func toRecord(index int, label, text, topic any) (model.Record, error) {
	if label == nil {
		return model.Record{}, errors.Errorf("第 %d 行 label 为空", index)
	}
	l, err := cast.ToIntE(label)
	if err != nil {
		return model.Record{}, errors.Wrapf(err, "第 %d 行 label 无法转换为整数", index)
	}
	t, err := toText(text)
	if err != nil {
		return model.Record{}, errors.Wrapf(err, "第 %d 行 processed_text 无法转换为文本", index)
	}
	var tp string
	if topic != nil {
		if tp, err = cast.ToStringE(topic); err != nil {
			return model.Record{}, errors.Wrapf(err, "第 %d 行 topic 无法转换为文本", index)
		}
	}
	return model.Record{
		Index:    index,
		Label:    l,
		Text:     t,
		Category: model.CategoryFor(l),
		Topic:    tp,
	}, nil
}

// toText processed_text 可能是字符串，也可能是分好词的列表
func toText(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case []any:
		tokens, err := cast.ToStringSliceE(val)
		if err != nil {
			return "", err
		}
		return strings.Join(tokens, " "), nil
	default:
		return cast.ToStringE(val)
	}
}

// readerExpr 根据扩展名选择 duckdb 的表函数
func readerExpr(path string) (string, error) {
	quoted := "'" + strings.ReplaceAll(path, "'", "''") + "'"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return "read_parquet(" + quoted + ")", nil
	case ".csv", ".tsv":
		return "read_csv_auto(" + quoted + ")", nil
	case ".json", ".jsonl", ".ndjson":
		return "read_json_auto(" + quoted + ")", nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}
}
