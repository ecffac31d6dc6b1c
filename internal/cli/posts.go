package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Inspect posts",
}

var postsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all posts, drafts included",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		posts, err := services.PostService.ListAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list posts: %w", err)
		}

		if len(posts) == 0 {
			fmt.Println("No posts found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSLUG\tTITLE\tPUBLISHED\tCREATED AT")
		for _, post := range posts {
			fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%s\n",
				post.ID,
				post.Slug,
				post.Title,
				post.Published,
				post.CreatedAt.Format("2006-01-02 15:04:05"),
			)
		}
		w.Flush()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(postsCmd)
	postsCmd.AddCommand(postsListCmd)
}
