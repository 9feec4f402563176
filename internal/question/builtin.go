package question

// Builtin returns the standard Arch Linux installer catalog. Each call
// returns a fresh copy so callers can never alias the shared sequence.
func Builtin() Catalog {
	return Catalog{
		Version: 1,
		Questions: []Question{
			{Key: "hostname", Prompt: "Hostname", Kind: FreeText},
			{Key: "username", Prompt: "Username", Kind: FreeText},
			{Key: "password", Prompt: "Password", Kind: FreeText},
			{
				Key:     "timezone",
				Prompt:  "Timezone",
				Kind:    MultipleChoice,
				Options: []string{"UTC", "America/New_York", "Europe/London", "Asia/Tokyo", "Australia/Sydney"},
			},
			{
				Key:     "locale",
				Prompt:  "Locale",
				Kind:    MultipleChoice,
				Options: []string{"en_US.UTF-8", "de_DE.UTF-8", "fr_FR.UTF-8", "ja_JP.UTF-8", "zh_CN.UTF-8"},
			},
			{
				Key:     "keyboard_layout",
				Prompt:  "Keyboard Layout",
				Kind:    MultipleChoice,
				Options: []string{"us", "de", "fr", "es", "jp"},
			},
			{
				Key:     "format_type",
				Prompt:  "Format Type",
				Kind:    MultipleChoice,
				Options: []string{"btrfs", "ext4", "xfs"},
			},
			{
				Key:     "package_manager",
				Prompt:  "Package Manager",
				Kind:    MultipleChoice,
				Options: []string{"pacman", "yay", "paru"},
			},
			{
				Key:     "bootloader",
				Prompt:  "Bootloader",
				Kind:    MultipleChoice,
				Options: []string{"grub", "systemd-boot"},
			},
			{
				Key:     "desktop_environment",
				Prompt:  "Desktop Environment",
				Kind:    MultipleChoice,
				Options: []string{"gnome", "kde", "xfce", "dwm", "wayland"},
			},
			{
				Key:     "reflector_country",
				Prompt:  "Reflector Country",
				Kind:    MultipleChoice,
				Options: []string{"US", "DE", "FR", "CA", "JP"},
			},
			{Key: "enable_ssh", Prompt: "Enable SSH", Kind: Boolean},
		},
	}
}
