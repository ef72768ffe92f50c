package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/jessevdk/go-flags"

	"github.com/kay-ou/SimTradeLab-sub001/config"
	"github.com/kay-ou/SimTradeLab-sub001/execution"
	"github.com/kay-ou/SimTradeLab-sub001/logging"
	"github.com/kay-ou/SimTradeLab-sub001/metrics"
	"github.com/kay-ou/SimTradeLab-sub001/types"
	"github.com/kay-ou/SimTradeLab-sub001/types/num"
)

type RunCmd struct {
	ctx context.Context

	config.RootPathFlag

	Ticks  string `short:"t" long:"ticks" required:"true" description:"CSV file with the market data bars to replay"`
	Orders string `short:"o" long:"orders" required:"true" description:"CSV file with the orders to submit during the replay"`
}

var runCmd RunCmd

func (opts *RunCmd) Execute(_ []string) error {
	cfg, err := config.Read(opts.RootPath)
	if err != nil {
		c := config.NewDefaultConfig()
		cfg = &c
	}

	log := logging.NewLoggerFromConfig(cfg.Logging)
	defer log.AtExit()
	if err != nil {
		log.Warn("no configuration found, running on defaults",
			logging.String("root-path", opts.RootPath), logging.Error(err))
	}

	metrics.Start(cfg.Metrics)

	engine := execution.NewEngine(log, cfg.Execution, cfg.Matching)
	if err := engine.Start(); err != nil {
		return err
	}
	defer engine.Stop()

	// pick up log level changes while the replay runs
	var watcher *config.Watcher
	if err == nil {
		watcher, err = config.NewFromFile(opts.ctx, log, opts.RootPath)
		if err != nil {
			return err
		}
		watcher.OnConfigUpdate(func(c config.Config) {
			engine.ReloadConf(c.Execution)
		})
	}

	ticks, err := loadTicks(opts.Ticks)
	if err != nil {
		return fmt.Errorf("couldn't load ticks from %s: %w", opts.Ticks, err)
	}
	orders, err := loadOrders(opts.Orders)
	if err != nil {
		return fmt.Errorf("couldn't load orders from %s: %w", opts.Orders, err)
	}

	log.Info("starting replay",
		logging.Int("ticks", len(ticks)),
		logging.Int("orders", len(orders)),
	)

	// orders join the replay when their creation time is reached
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt < orders[j].CreatedAt
	})
	sort.SliceStable(ticks, func(i, j int) bool {
		return ticks[i].Timestamp < ticks[j].Timestamp
	})

	next := 0
	for _, tick := range ticks {
		if watcher != nil {
			watcher.Poll()
		}
		for next < len(orders) && orders[next].CreatedAt <= tick.Timestamp {
			if err := engine.SubmitOrder(orders[next]); err != nil {
				log.Warn("order rejected during replay",
					logging.String("order-id", orders[next].ID),
					logging.Error(err))
			}
			next++
		}
		if _, err := engine.UpdateMarketData(tick); err != nil {
			log.Warn("tick rejected during replay",
				logging.String("symbol", tick.Symbol),
				logging.Int64("timestamp", tick.Timestamp),
				logging.Error(err))
		}
	}

	printReport(engine)
	return nil
}

func printReport(engine *execution.Engine) {
	stats := engine.GetStatistics()
	fmt.Printf("orders submitted: %d\n", stats.TotalOrders)
	fmt.Printf("orders filled:    %d\n", stats.FilledOrders)
	fmt.Printf("fills produced:   %d\n", stats.TotalFills)
	fmt.Printf("fill rate:        %.4f\n", stats.FillRate)
	for role, name := range engine.GetPluginInfo() {
		fmt.Printf("%s: %s\n", role, name)
	}
	for _, f := range engine.GetFills() {
		fmt.Printf("fill %s order=%s %s %s @ %s commission=%s\n",
			f.ID, f.OrderID, f.Side, f.Size, f.Price, f.Commission)
	}
}

// loadTicks reads market data bars from a CSV file with the columns
// symbol,timestamp,open,high,low,close,volume and an optional header row.
func loadTicks(path string) ([]types.MarketData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 7

	var out []types.MarketData
	for line := 0; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if line == 0 && rec[0] == "symbol" {
			continue
		}
		ts, err := strconv.ParseInt(rec[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad timestamp: %w", line+1, err)
		}
		tick := types.MarketData{
			Symbol:    rec[0],
			Timestamp: ts,
		}
		for i, dst := range []*num.Decimal{&tick.Open, &tick.High, &tick.Low, &tick.Close, &tick.Volume} {
			d, err := num.DecimalFromString(rec[2+i])
			if err != nil {
				return nil, fmt.Errorf("line %d: bad decimal %q: %w", line+1, rec[2+i], err)
			}
			*dst = d
		}
		if err := tick.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		out = append(out, tick)
	}
	return out, nil
}

// loadOrders reads orders from a CSV file with the columns
// id,symbol,side,type,tif,size,price,trigger_price,trail_amount,created_at
// and an optional header row. Empty price columns mean zero.
func loadOrders(path string) ([]*types.Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 10

	var out []*types.Order
	for line := 0; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if line == 0 && rec[0] == "id" {
			continue
		}
		o := &types.Order{
			ID:     rec[0],
			Symbol: rec[1],
		}
		if o.Side, err = types.ParseSide(rec[2]); err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		if o.Type, err = types.ParseOrderType(rec[3]); err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		if o.TimeInForce, err = types.ParseTimeInForce(rec[4]); err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		for i, dst := range []*num.Decimal{&o.Size, &o.Price, &o.TriggerPrice, &o.TrailAmount} {
			val := rec[5+i]
			if val == "" {
				continue
			}
			d, err := num.DecimalFromString(val)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad decimal %q: %w", line+1, val, err)
			}
			*dst = d
		}
		if rec[9] != "" {
			if o.CreatedAt, err = strconv.ParseInt(rec[9], 10, 64); err != nil {
				return nil, fmt.Errorf("line %d: bad created_at: %w", line+1, err)
			}
		}
		out = append(out, o)
	}
	return out, nil
}

func Run(ctx context.Context, parser *flags.Parser) error {
	runCmd = RunCmd{
		ctx:          ctx,
		RootPathFlag: config.NewRootPathFlag(),
	}

	short := "Runs a backtest replay"
	long := "Replay a market data file against an order file and report the fills"

	_, err := parser.AddCommand("run", short, long, &runCmd)
	return err
}
