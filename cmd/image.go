package cmd

import (
	"fmt"
	"image/png"
	"os"

	"github.com/fatih/color"
	"github.com/jfmyers9/spindle/pkg/webapi"
	"github.com/spf13/cobra"
)

var imageOut string

var imageCmd = &cobra.Command{
	Use:   "image <album|artist|playlist link>",
	Short: "Download the artwork of an album, artist or playlist",
	Long: `Download and decode the largest artwork image of an album, artist
or playlist. An image URL may be given directly instead of a link.

With --out the decoded image is written as PNG.`,
	Args: cobra.ExactArgs(1),
	RunE: runImage,
}

func init() {
	imageCmd.Flags().StringVarP(&imageOut, "out", "o", "", "write the image to this PNG file")
	rootCmd.AddCommand(imageCmd)
}

func runImage(cmd *cobra.Command, args []string) error {
	client, err := apiClient(cmd.Context())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	uri := args[0]
	if link, err := webapi.ParseLink(args[0]); err == nil {
		var images []webapi.Image
		switch link.Kind {
		case webapi.LinkAlbum:
			album, err := client.GetAlbum(ctx, link.ID)
			if err != nil {
				return fmt.Errorf("failed to get album: %w", err)
			}
			images = album.Data.Images
		case webapi.LinkArtist:
			artist, err := client.GetArtist(ctx, link.ID)
			if err != nil {
				return fmt.Errorf("failed to get artist: %w", err)
			}
			images = artist.Images
		case webapi.LinkPlaylist:
			playlist, err := client.GetPlaylist(ctx, link.ID)
			if err != nil {
				return fmt.Errorf("failed to get playlist: %w", err)
			}
			images = playlist.Images
		default:
			return fmt.Errorf("%s links have no artwork", link.Kind)
		}

		if len(images) == 0 {
			return fmt.Errorf("%s %s has no artwork", link.Kind, link.ID)
		}
		// The API lists the widest image first
		uri = images[0].URL
	}

	img, format, err := client.GetImage(ctx, uri)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	fmt.Printf("%s %dx%d %s\n", color.CyanString(format), bounds.Dx(), bounds.Dy(), color.HiBlackString(uri))

	if imageOut == "" {
		return nil
	}

	f, err := os.Create(imageOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", imageOut, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to write %s: %w", imageOut, err)
	}

	color.New(color.FgGreen).Printf("✓ Saved to %s\n", imageOut)
	return nil
}
