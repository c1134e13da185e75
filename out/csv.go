// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"

	"github.com/gocarina/gocsv"
)

// endRecordCSV is the flat, csv-tagged projection of EndRecord that
// gocsv can marshal; EndRecord itself keeps array fields for
// ergonomic construction by the integrator.
type endRecordCSV struct {
	JobNumber     int     `csv:"jobnumber"`
	Particle      int     `csv:"particle"`
	TStart        float64 `csv:"tstart"`
	XStart        float64 `csv:"xstart"`
	YStart        float64 `csv:"ystart"`
	ZStart        float64 `csv:"zstart"`
	VXStart       float64 `csv:"vxstart"`
	VYStart       float64 `csv:"vystart"`
	VZStart       float64 `csv:"vzstart"`
	PolStart      int     `csv:"polstart"`
	HStart        float64 `csv:"Hstart"`
	EStart        float64 `csv:"Estart"`
	TEnd          float64 `csv:"tend"`
	XEnd          float64 `csv:"xend"`
	YEnd          float64 `csv:"yend"`
	ZEnd          float64 `csv:"zend"`
	VXEnd         float64 `csv:"vxend"`
	VYEnd         float64 `csv:"vyend"`
	VZEnd         float64 `csv:"vzend"`
	PolEnd        int     `csv:"polend"`
	HEnd          float64 `csv:"Hend"`
	EEnd          float64 `csv:"Eend"`
	StopID        int     `csv:"stopID"`
	NSpinFlip     int     `csv:"Nspinflip"`
	ComputingTime float64 `csv:"ComputingTime"`
	NHit          int     `csv:"Nhit"`
	NStep         int     `csv:"Nstep"`
	TrajLength    float64 `csv:"trajlength"`
	Hmax          float64 `csv:"Hmax"`
}

func toCSV(r EndRecord) endRecordCSV {
	return endRecordCSV{
		JobNumber: r.JobNumber, Particle: r.Particle,
		TStart: r.TStart, XStart: r.XStart[0], YStart: r.XStart[1], ZStart: r.XStart[2],
		VXStart: r.VStart[0], VYStart: r.VStart[1], VZStart: r.VStart[2],
		PolStart: r.PolStart, HStart: r.HStart, EStart: r.EStart,
		TEnd: r.TEnd, XEnd: r.XEnd[0], YEnd: r.XEnd[1], ZEnd: r.XEnd[2],
		VXEnd: r.VEnd[0], VYEnd: r.VEnd[1], VZEnd: r.VEnd[2],
		PolEnd: r.PolEnd, HEnd: r.HEnd, EEnd: r.EEnd,
		StopID: r.StopID, NSpinFlip: r.NSpinFlip, ComputingTime: r.ComputingTime,
		NHit: r.NHit, NStep: r.NStep, TrajLength: r.TrajLength, Hmax: r.Hmax,
	}
}

// WriteEndCSV appends the given end records to a CSV file at path,
// writing the header only when the file is created fresh. This is an
// optional sink alongside FileSinks' whitespace-column format, for
// consumers that prefer tabular CSV (e.g. spreadsheet or pandas
// post-processing).
func WriteEndCSV(path string, records []EndRecord) error {
	rows := make([]*endRecordCSV, len(records))
	for i, r := range records {
		row := toCSV(r)
		rows[i] = &row
	}
	_, statErr := os.Stat(path)
	fresh := os.IsNotExist(statErr)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	if fresh {
		return gocsv.MarshalFile(&rows, f)
	}
	return gocsv.MarshalWithoutHeaders(&rows, f)
}
