package models

import (
	"database/sql"
	"time"
)

type Trade struct {
	Id            int64
	Asset         sql.Null[string]
	Symbol        sql.Null[string]
	IsBuyer       bool
	IsMaker       bool
	Price         float64
	Quantity      float64
	QuoteQuantity float64
	TradeTime     time.Time
}

func (t *Trade) ScanTargets() []any {
	return []any{
		&t.Id,
		&t.Asset,
		&t.Symbol,
		&t.IsBuyer,
		&t.IsMaker,
		&t.Price,
		&t.Quantity,
		&t.QuoteQuantity,
		&t.TradeTime,
	}
}

func (t *Trade) Values() []any {
	return []any{
		t.Id,
		nullable(t.Asset),
		nullable(t.Symbol),
		t.IsBuyer,
		t.IsMaker,
		t.Price,
		t.Quantity,
		t.QuoteQuantity,
		t.TradeTime,
	}
}

var tradeColumns = []string{
	"Id",
	"Asset",
	"Symbol",
	"IsBuyer",
	"IsMaker",
	"Price",
	"Quantity",
	"QuoteQuantity",
	"TradeTime",
}

// TradesSchema declares the Trades table.
type TradesSchema struct{}

func (TradesSchema) Name() string {
	return "trades"
}

func (TradesSchema) Columns() []string {
	return tradeColumns
}

func (TradesSchema) NewRecord() Record {
	return &Trade{}
}
