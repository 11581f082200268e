package clean

import (
	"context"
	"time"

	"github.com/JonMunkholm/autoprep/internal/frame"
	"github.com/JonMunkholm/autoprep/internal/logging"
	"github.com/JonMunkholm/autoprep/internal/schema"
)

// MPGToLitres is the numerator that turns miles per gallon into litres per
// 100 km.
const MPGToLitres = 235.0

var (
	imputedColumns     = []string{"normalized-losses", "bore", "stroke", "horsepower", "peak-rpm"}
	floatColumns       = []string{"bore", "stroke", "peak-rpm", "price"}
	intColumns         = []string{"normalized-losses", "horsepower"}
	scaledColumns      = []string{"length", "width", "height"}
	horsepowerLabels   = []string{"Low", "Medium", "High"}
	fuelTypeNames      = map[string]string{"diesel": "fuel-type-diesel", "gas": "fuel-type-gas"}
	aspirationNames    = map[string]string{"std": "aspiration-std", "turbo": "aspiration-turbo"}
	mpgConversions     = []struct{ from, to string }{{"city-mpg", "city-L/100km"}, {"highway-mpg", "highway-L/100km"}}
	constantFillColumn = "bore"
	constantFillValue  = "four"
	targetColumn       = "price"
	binnedColumn       = "horsepower"
)

// AutoOptions configures one run of the automobile cleaning pipeline.
type AutoOptions struct {
	Source       string // header-less 26-column CSV (.gz accepted)
	Output       string // cleaned CSV, replaced atomically
	MissingToken string // cell text meaning "no value" (dataset default when empty)
	RunID        string // generated when empty
}

// Report summarises a pipeline run.
type Report struct {
	RunID     string             `json:"run_id"`
	Source    string             `json:"source"`
	Output    string             `json:"output"`
	BytesRead int64              `json:"bytes_read"`
	RowsIn    int                `json:"rows_in"`
	RowsOut   int                `json:"rows_out"`
	Dropped   int                `json:"dropped"`
	Replaced  int                `json:"replaced"`
	Missing   []ColumnCount      `json:"missing"`  // after token replacement, columns with gaps only
	Means     map[string]float64 `json:"means"`    // imputed columns
	Filled    map[string]int     `json:"filled"`   // cells filled per column
	Maxima    map[string]float64 `json:"maxima"`   // scaling divisors
	Bins      *Bins              `json:"bins"`     // horsepower bins, not written to the output
	Residual  []ColumnCount      `json:"residual"` // columns still holding gaps when written
	Columns   []string           `json:"columns"`
	Duration  time.Duration      `json:"duration"`
}

// AutoPipeline returns the ordered transform steps of the automobile
// cleaning run, recording their results in report.
func AutoPipeline(ds schema.Dataset, opts AutoOptions, report *Report) *Pipeline {
	token := opts.MissingToken
	if token == "" {
		token = ds.MissingToken
	}

	return &Pipeline{Steps: []Step{
		{Name: "normalize-missing", Apply: func(ctx context.Context, t *frame.Table) error {
			report.Replaced = t.Replace(token)
			report.Missing = nonZero(MissingCounts(t))
			for _, mc := range report.Missing {
				logging.WithFields(ctx, "column", mc.Column).Info("missing values", "count", mc.Count)
			}
			return nil
		}},
		{Name: "impute-mean", Apply: func(ctx context.Context, t *frame.Table) error {
			for _, name := range imputedColumns {
				mean, n, err := ImputeMean(t, name)
				if err != nil {
					return err
				}
				report.Means[name] = mean
				report.Filled[name] += n
				logging.WithFields(ctx, "column", name).Debug("imputed mean", "mean", mean, "filled", n)
			}
			return nil
		}},
		{Name: "fill-categorical", Apply: func(ctx context.Context, t *frame.Table) error {
			n, err := FillConstant(t, constantFillColumn, frame.TextValue(constantFillValue))
			if err != nil {
				return err
			}
			report.Filled[constantFillColumn] += n
			return nil
		}},
		{Name: "drop-missing-target", Apply: func(ctx context.Context, t *frame.Table) error {
			n, err := DropMissing(t, targetColumn)
			if err != nil {
				return err
			}
			report.Dropped = n
			return nil
		}},
		{Name: "coerce-types", Apply: func(ctx context.Context, t *frame.Table) error {
			if err := Coerce(t, frame.KindFloat, floatColumns...); err != nil {
				return err
			}
			return Coerce(t, frame.KindInt, intColumns...)
		}},
		{Name: "convert-mpg", Apply: func(ctx context.Context, t *frame.Table) error {
			for _, conv := range mpgConversions {
				if err := Reciprocal(t, conv.from, MPGToLitres, conv.to); err != nil {
					return err
				}
			}
			return nil
		}},
		{Name: "scale-by-max", Apply: func(ctx context.Context, t *frame.Table) error {
			for _, name := range scaledColumns {
				hi, err := ScaleByMax(t, name)
				if err != nil {
					return err
				}
				report.Maxima[name] = hi
			}
			return nil
		}},
		{Name: "coerce-horsepower", Apply: func(ctx context.Context, t *frame.Table) error {
			return Coerce(t, frame.KindInt, binnedColumn)
		}},
		{Name: "bin-horsepower", Apply: func(ctx context.Context, t *frame.Table) error {
			bins, _, err := EqualWidthBins(t, binnedColumn, horsepowerLabels)
			if err != nil {
				return err
			}
			report.Bins = bins
			logger := logging.WithFields(ctx, "column", binnedColumn)
			if bins.Counts == nil {
				logger.Warn("all values equal, bins not assigned", "edges", bins.Edges)
				return nil
			}
			logger.Info("bins computed", "edges", bins.Edges, "labels", bins.Labels, "counts", bins.Counts)
			return nil
		}},
		{Name: "encode-indicators", Apply: func(ctx context.Context, t *frame.Table) error {
			if _, err := Indicators(t, "fuel-type", fuelTypeNames); err != nil {
				return err
			}
			_, err := Indicators(t, "aspiration", aspirationNames)
			return err
		}},
		{Name: "conform-schema", Apply: func(ctx context.Context, t *frame.Table) error {
			coerced, skipped, err := ConformTypes(t, ds.FieldSpecs)
			if err != nil {
				return err
			}
			for _, name := range skipped {
				logging.WithFields(ctx, "column", name).Warn("column left as text, it has missing values")
			}
			logging.FromContext(ctx).Debug("columns typed from schema", "columns", coerced)
			return nil
		}},
	}}
}

// RunAuto loads opts.Source, applies AutoPipeline and writes opts.Output.
// On failure the returned report holds whatever was recorded before the
// failing step and no output file is written.
func RunAuto(ctx context.Context, opts AutoOptions) (*Report, error) {
	start := time.Now()
	ctx = logging.WithRunID(ctx, opts.RunID)

	report := &Report{
		RunID:  logging.RunID(ctx),
		Source: opts.Source,
		Output: opts.Output,
		Means:  make(map[string]float64),
		Filled: make(map[string]int),
		Maxima: make(map[string]float64),
	}

	logger := logging.WithFields(ctx, "source", opts.Source, "output", opts.Output)
	logger.Info("cleaning started")

	ds, err := schema.Get("auto")
	if err != nil {
		return report, err
	}

	var t *frame.Table
	err = runStep(ctx, "load", func() error {
		var err error
		t, report.BytesRead, err = frame.ReadFile(ctx, opts.Source, frame.ReadOptions{
			Header: ds.Header,
			Names:  ds.Columns(),
		})
		return err
	}, nil)
	if err != nil {
		return report, err
	}
	report.RowsIn = t.Len()
	logger.Info("source loaded", "rows", t.Len(), "bytes", report.BytesRead)

	if err := AutoPipeline(ds, opts, report).Run(ctx, t); err != nil {
		return report, err
	}

	report.Residual = nonZero(MissingCounts(t))
	for _, rc := range report.Residual {
		logger.Warn("column still has missing values", "column", rc.Column, "count", rc.Count)
	}

	if err := runStep(ctx, "persist", func() error { return frame.WriteFile(opts.Output, t) }, t); err != nil {
		return report, err
	}

	report.RowsOut = t.Len()
	report.Columns = t.Names()
	report.Duration = time.Since(start)

	logger.Info("cleaning finished",
		"rows_in", report.RowsIn,
		"rows_out", report.RowsOut,
		"dropped", report.Dropped,
		"duration", report.Duration,
	)
	return report, nil
}

func nonZero(counts []ColumnCount) []ColumnCount {
	var out []ColumnCount
	for _, c := range counts {
		if c.Count > 0 {
			out = append(out, c)
		}
	}
	return out
}

