package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	azpolicy "github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/spf13/cobra"
	"github.com/venturelens/venturelens/internal/projectconfig"
	"github.com/venturelens/venturelens/internal/spinner"
)

func newFetchCommand() *cobra.Command {
	var (
		container string
		prefix    string
		destDir   string
	)

	cmd := &cobra.Command{
		Use:   "fetch <account-url>",
		Short: "Download a trained model bundle from Azure Blob Storage",
		Long: `Download the artifact bundle (pillar classifiers, meta model, importance
rankings, metadata) from an Azure Blob Storage container into the local
models directory.

Authentication uses the default Azure credential chain (environment,
workload identity, managed identity, Azure CLI).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountURL := args[0]
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := projectconfig.Load(wd)
			if err != nil {
				return err
			}

			if container == "" {
				container = cfg.Fetch.Container
			}
			if container == "" {
				return fmt.Errorf("no container configured: pass --container or set fetch.container in .venturelens.yaml")
			}
			if destDir == "" {
				destDir = cfg.Paths.Models
			}

			cred, err := azidentity.NewDefaultAzureCredential(nil)
			if err != nil {
				return fmt.Errorf("building Azure credential: %w", err)
			}
			client, err := azblob.NewClient(accountURL, cred, &azblob.ClientOptions{
				ClientOptions: azcore.ClientOptions{
					Retry: azpolicy.RetryOptions{MaxRetries: 5},
				},
			})
			if err != nil {
				return fmt.Errorf("connecting to %s: %w", accountURL, err)
			}

			if err := os.MkdirAll(destDir, 0o755); err != nil {
				return fmt.Errorf("creating models directory: %w", err)
			}

			stopSpinner := spinner.Start(cmd.ErrOrStderr(), fmt.Sprintf("fetching bundle from %s/%s", container, prefix))
			defer stopSpinner()

			ctx := cmd.Context()
			count := 0
			pager := client.NewListBlobsFlatPager(container, &azblob.ListBlobsFlatOptions{
				Prefix: &prefix,
			})
			for pager.More() {
				page, err := pager.NextPage(ctx)
				if err != nil {
					return fmt.Errorf("listing blobs: %w", err)
				}
				for _, blob := range page.Segment.BlobItems {
					name := *blob.Name
					local := filepath.Join(destDir, filepath.FromSlash(strings.TrimPrefix(name, prefix)))
					if err := downloadBlob(cmd, client, container, name, local); err != nil {
						return err
					}
					count++
				}
			}

			stopSpinner()
			if count == 0 {
				return fmt.Errorf("no blobs found under %s/%s", container, prefix)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "fetched %d artifact(s) into %s\n", count, destDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&container, "container", "", "Blob container holding the bundle (default from project config)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Blob name prefix to download, e.g. v2.1.0/")
	cmd.Flags().StringVar(&destDir, "models", "", "Destination directory (default from project config)")

	return cmd
}

func downloadBlob(cmd *cobra.Command, client *azblob.Client, container, name, local string) error {
	if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(local), err)
	}
	f, err := os.Create(local)
	if err != nil {
		return fmt.Errorf("creating %s: %w", local, err)
	}
	defer f.Close() //nolint:errcheck

	slog.Debug("downloading blob", "container", container, "blob", name, "dest", local)
	if _, err := client.DownloadFile(cmd.Context(), container, name, f, nil); err != nil {
		return fmt.Errorf("downloading %s: %w", name, err)
	}
	return nil
}
