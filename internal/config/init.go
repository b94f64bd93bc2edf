package config

import (
	"fmt"
	"os"
)

const starterConfig = `# vaultpress configuration
#
# Every setting is optional; the vault path and --hugo-root flag on the
# command line take precedence over values here.

# Path to the Obsidian vault (overridden by the CLI argument).
#vault: /home/user/vault

hugo:
  # Hugo site root the posts are written into.
  #root: /home/user/blog
  # Content section, posts land in <root>/content/<section>/<slug>/.
  section: posts

attachments:
  # Attachment directory names probed when resolving embedded images,
  # in priority order.
  folders:
    - attachments
    - images
    - assets
    - files

# Front matter draft flag for generated posts.
draft: false

logging:
  level: info
`

// Init writes a commented starter configuration file.
func Init(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
		}
	}
	return os.WriteFile(path, []byte(starterConfig), 0o644)
}
