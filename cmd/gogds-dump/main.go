package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Kazzz-S/gogds/pkg/gogds"
)

var (
	rootCmd = &cobra.Command{
		Use:   "gogds-dump <input.gds> [output.json]",
		Short: "Decode GDSII stream files",
		Long:  "gogds-dump decodes a GDSII stream file into named, typed records using the gogds library.",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if hexStream != "" {
				return runHex(ctx, hexStream)
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			outputPath := ""
			if len(args) == 2 {
				outputPath = args[1]
			}
			return runFile(ctx, args[0], outputPath)
		},
	}

	hexStream string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&hexStream, "hex", "", "decode a hex-encoded stream instead of a file")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func runFile(ctx context.Context, inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}
	result, err := gogds.Decode(ctx, data)
	if err != nil {
		return err
	}
	printEntries(result)
	logrus.WithFields(logrus.Fields{
		"records": len(result.Entries),
		"bytes":   result.ByteCount,
	}).Info("stream decoded")
	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(result.String()+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outputPath, err)
		}
		logrus.WithField("path", outputPath).Info("document written")
	}
	return nil
}

func runHex(ctx context.Context, raw string) error {
	result, err := gogds.DecodeHex(ctx, raw)
	if err != nil {
		return err
	}
	printEntries(result)
	return nil
}

func printEntries(result gogds.Result) {
	for _, entry := range result.Entries {
		line, err := json.Marshal(entry)
		if err != nil {
			logrus.WithError(err).WithField("record", entry.Name).Error("failed to render record")
			continue
		}
		fmt.Println(string(line))
	}
}
