// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/PowerStat/DateClass/datetime/julian"
	"gopkg.in/yaml.v3"
)

// batchFile is the format of the file read by the batch command, eg:
//
//	operations:
//	  - op: add
//	    date: 0012-12-12
//	    days: 20
//	  - op: diff
//	    date: 0012-12-12
//	    to: 0013-01-01
//	  - op: easter
//	    year: 1582
type batchFile struct {
	Operations []batchOp `yaml:"operations"`
}

type batchOp struct {
	Op      string `yaml:"op"`
	Date    string `yaml:"date"`
	To      string `yaml:"to"`
	JD      uint64 `yaml:"jd"`
	MJD     uint64 `yaml:"mjd"`
	Year    int64  `yaml:"year"`
	Week    uint8  `yaml:"week"`
	Weekday string `yaml:"weekday"`
	Years   uint64 `yaml:"years"`
	Months  uint64 `yaml:"months"`
	Weeks   uint64 `yaml:"weeks"`
	Days    uint64 `yaml:"days"`
}

func (op batchOp) run() (result, error) {
	o := offset{Years: op.Years, Months: op.Months, Weeks: op.Weeks, Days: op.Days}
	switch op.Op {
	case "info":
		d, err := julian.ParseDate(op.Date)
		if err != nil {
			return nil, err
		}
		return dateInfoFor(d)
	case "fromjd":
		return dateFromJD(op.JD)
	case "frommjd":
		return dateFromMJD(op.MJD)
	case "easter":
		return easterFor(op.Year)
	case "isoweek":
		return isoWeekDate(op.Year, op.Week, op.Weekday)
	case "add":
		return applyOffset(op.Date, o, true)
	case "sub":
		return applyOffset(op.Date, o, false)
	case "diff":
		return diffDates(op.Date, op.To)
	}
	return nil, fmt.Errorf("unsupported operation %q", op.Op)
}

func readBatchFile(r io.Reader) (batchFile, error) {
	var bf batchFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&bf); err != nil && !errors.Is(err, io.EOF) {
		return batchFile{}, err
	}
	return bf, nil
}

// runBatch runs every operation, including those after a failure, and
// returns the results of the successful ones along with all of the errors.
func runBatch(ctx context.Context, bf batchFile) ([]result, error) {
	var errs errors.M
	results := make([]result, 0, len(bf.Operations))
	for i, op := range bf.Operations {
		r, err := op.run()
		if err != nil {
			ctxlog.Logger(ctx).Error("batch operation failed", "index", i, "op", op.Op, "error", err)
			errs.Append(fmt.Errorf("operation %v (%v): %w", i, op.Op, err))
			continue
		}
		ctxlog.Logger(ctx).Debug("batch operation", "index", i, "op", op.Op, "result", r)
		results = append(results, r)
	}
	return results, errs.Err()
}

func (a *app) batch(ctx context.Context, values interface{}, args []string) error {
	ctx, p, done, err := a.setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer done()
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	bf, err := readBatchFile(f)
	if err != nil {
		return fmt.Errorf("%v: %w", args[0], err)
	}
	results, runErr := runBatch(ctxlog.ContextWith(ctx, "file", args[0]), bf)
	if err := p.print(results...); err != nil {
		return err
	}
	return runErr
}
