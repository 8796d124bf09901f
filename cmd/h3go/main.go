// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command h3go is a thin line-oriented driver around the h3go package: it
// reads index strings or coordinates from stdin and prints the result of a
// single operation, one line per input line (compact, uncompact and
// polyfill instead read all of stdin as one payload and print one line),
// exiting non-zero the moment any input is malformed.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/isbang/h3go"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		glog.Errorf("h3go: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "h3go",
		Short: "Read H3 index strings or geo coordinates from stdin, one operation per line.",
	}

	var res int
	root.PersistentFlags().IntVar(&res, "res", 9, "resolution used by geoToH3, uncompact and polyfill")

	root.AddCommand(
		newGeoToH3Cmd(&res),
		newH3ToGeoCmd(),
		newH3ToGeoBoundaryCmd(),
		newKRingCmd(&res),
		newH3LineCmd(),
		newCompactCmd(),
		newUncompactCmd(&res),
		newPolyfillCmd(&res),
	)
	return root
}

func eachLine(fn func(line string) error) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func newGeoToH3Cmd(res *int) *cobra.Command {
	return &cobra.Command{
		Use:   "geoToH3",
		Short: "lat,lon per line -> H3 index",
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachLine(func(line string) error {
				parts := strings.Split(line, ",")
				if len(parts) != 2 {
					return fmt.Errorf("expected 'lat,lon', got %q", line)
				}
				lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
				if err != nil {
					return err
				}
				lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
				if err != nil {
					return err
				}
				g := h3go.GeoCoord{}
				g.SetDegrees(lat, lon)
				idx := h3go.GeoToH3(&g, *res)
				if idx == h3go.H3_NULL {
					return fmt.Errorf("no cell for %q at res %d", line, *res)
				}
				fmt.Println(h3go.H3ToString(idx))
				return nil
			})
		},
	}
}

func newH3ToGeoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "h3ToGeo",
		Short: "H3 index per line -> lat,lon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachLine(func(line string) error {
				idx := h3go.StringToH3(line)
				if idx == h3go.H3_NULL || !h3go.H3IsValid(idx) {
					return fmt.Errorf("invalid index %q", line)
				}
				var g h3go.GeoCoord
				h3go.H3ToGeo(idx, &g)
				fmt.Printf("%.9f,%.9f\n", g.DegreesLat(), g.DegreesLon())
				return nil
			})
		},
	}
}

func newH3ToGeoBoundaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "h3ToGeoBoundary",
		Short: "H3 index per line -> semicolon-separated lat,lon boundary vertices",
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachLine(func(line string) error {
				idx := h3go.StringToH3(line)
				if idx == h3go.H3_NULL || !h3go.H3IsValid(idx) {
					return fmt.Errorf("invalid index %q", line)
				}
				var gb h3go.GeoBoundary
				h3go.H3ToGeoBoundary(idx, &gb)
				fmt.Println(gb.String())
				return nil
			})
		},
	}
}

func newKRingCmd(res *int) *cobra.Command {
	return &cobra.Command{
		Use:   "kRing",
		Short: "H3 index,k per line -> comma-separated ring members",
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachLine(func(line string) error {
				parts := strings.Split(line, ",")
				if len(parts) != 2 {
					return fmt.Errorf("expected 'index,k', got %q", line)
				}
				idx := h3go.StringToH3(strings.TrimSpace(parts[0]))
				if idx == h3go.H3_NULL || !h3go.H3IsValid(idx) {
					return fmt.Errorf("invalid index %q", parts[0])
				}
				k, err := strconv.Atoi(strings.TrimSpace(parts[1]))
				if err != nil {
					return err
				}
				ring := h3go.KRing(idx, k)
				strs := make([]string, len(ring))
				for i, c := range ring {
					strs[i] = h3go.H3ToString(c)
				}
				fmt.Println(strings.Join(strs, ","))
				return nil
			})
		},
	}
}

func newH3LineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "h3Line",
		Short: "start,end per line -> comma-separated indexes along the grid line",
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachLine(func(line string) error {
				parts := strings.Split(line, ",")
				if len(parts) != 2 {
					return fmt.Errorf("expected 'start,end', got %q", line)
				}
				start := h3go.StringToH3(strings.TrimSpace(parts[0]))
				end := h3go.StringToH3(strings.TrimSpace(parts[1]))
				if start == h3go.H3_NULL || end == h3go.H3_NULL {
					return fmt.Errorf("invalid index in %q", line)
				}
				var out []h3go.H3Index
				n := h3go.H3Line(start, end, &out)
				if n < 0 {
					return fmt.Errorf("no line between %q and %q", parts[0], parts[1])
				}
				strs := make([]string, len(out))
				for i, c := range out {
					strs[i] = h3go.H3ToString(c)
				}
				fmt.Println(strings.Join(strs, ","))
				return nil
			})
		},
	}
}

func newCompactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compact",
		Short: "whole stdin, comma-separated indexes -> compacted set",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readAll(os.Stdin)
			if err != nil {
				return err
			}
			set, err := parseIndexSet(data)
			if err != nil {
				return err
			}
			compacted, err := h3go.Compact(set)
			if err != nil {
				return err
			}
			printIndexSet(compacted)
			return nil
		},
	}
}

func newUncompactCmd(res *int) *cobra.Command {
	return &cobra.Command{
		Use:   "uncompact",
		Short: "whole stdin, comma-separated indexes -> uncompacted set at --res",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readAll(os.Stdin)
			if err != nil {
				return err
			}
			set, err := parseIndexSet(data)
			if err != nil {
				return err
			}
			uncompacted, err := h3go.Uncompact(set, *res)
			if err != nil {
				return err
			}
			printIndexSet(uncompacted)
			return nil
		},
	}
}

func newPolyfillCmd(res *int) *cobra.Command {
	return &cobra.Command{
		Use:   "polyfill",
		Short: "whole stdin, comma-separated lat,lon;lat,lon;... outer loop -> filled indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readAll(os.Stdin)
			if err != nil {
				return err
			}
			fence, err := parseGeofence(strings.TrimSpace(string(data)))
			if err != nil {
				return err
			}
			polygon := h3go.GeoPolygon{}
			polygon.SetGeofence(fence)
			filled := h3go.Polyfill(&polygon, *res)
			printIndexSet(filled)
			return nil
		},
	}
}

func parseIndexSet(data []byte) ([]h3go.H3Index, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(string(data)), func(r rune) bool {
		return r == ',' || r == '\n'
	})
	out := make([]h3go.H3Index, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		idx := h3go.StringToH3(f)
		if idx == h3go.H3_NULL || !h3go.H3IsValid(idx) {
			return nil, fmt.Errorf("invalid index %q", f)
		}
		out = append(out, idx)
	}
	return out, nil
}

func printIndexSet(set []h3go.H3Index) {
	strs := make([]string, len(set))
	for i, c := range set {
		strs[i] = h3go.H3ToString(c)
	}
	fmt.Println(strings.Join(strs, ","))
}

func parseGeofence(s string) ([]h3go.GeoCoord, error) {
	pairs := strings.Split(s, ";")
	out := make([]h3go.GeoCoord, 0, len(pairs))
	for _, p := range pairs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		parts := strings.Split(p, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("expected 'lat,lon', got %q", p)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, err
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, err
		}
		g := h3go.GeoCoord{}
		g.SetDegrees(lat, lon)
		out = append(out, g)
	}
	if len(out) < 3 {
		return nil, fmt.Errorf("geofence needs at least 3 vertices, got %d", len(out))
	}
	return out, nil
}

func readAll(f *os.File) ([]byte, error) {
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var sb strings.Builder
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}
