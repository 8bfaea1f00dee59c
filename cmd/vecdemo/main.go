// Command vecdemo walks a vector through its lifecycle — appends with
// capacity doubling, an interior insert, an erase and a shrinking resize —
// logging size and capacity after every step.
package main

import (
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	vector "github.com/imgk/vector-go"
)

func main() {
	count := pflag.IntP("count", "n", 3, "number of values to append")
	pflag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	vector.SetLogger(logger)

	v := vector.New[int](vector.Trivial[int]())
	defer v.Release()

	for i := 1; i <= *count; i++ {
		if _, err := v.Append(i); err != nil {
			logger.Fatal("append error", zap.Error(err))
		}
		logger.Info("append",
			zap.Int("value", i),
			zap.Int("len", v.Len()),
			zap.Int("cap", v.Cap()))
	}

	if v.Len() > 0 {
		mid := v.Len() / 2
		if _, err := v.Insert(mid, 99); err != nil {
			logger.Fatal("insert error", zap.Error(err))
		}
		logger.Info("insert", zap.Int("index", mid), zap.Ints("values", snapshot(v)))

		if _, err := v.Erase(0); err != nil {
			logger.Fatal("erase error", zap.Error(err))
		}
		logger.Info("erase", zap.Ints("values", snapshot(v)))

		if err := v.Resize(1); err != nil {
			logger.Fatal("resize error", zap.Error(err))
		}
		logger.Info("resize",
			zap.Ints("values", snapshot(v)),
			zap.Int("len", v.Len()),
			zap.Int("cap", v.Cap()))
	}
}

func snapshot(v *vector.Vector[int]) []int {
	out := make([]int, 0, v.Len())
	for x := range v.Values() {
		out = append(out, x)
	}
	return out
}
