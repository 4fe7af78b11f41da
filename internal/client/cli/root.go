package cli

import (
	"github.com/dmitrijs2005/gkeyring/internal/buildinfo"
	"github.com/dmitrijs2005/gkeyring/internal/client/config"
	"github.com/dmitrijs2005/gkeyring/internal/client/models"
	"github.com/spf13/cobra"
)

const description = `By default gkeyring queries the keyring for items matching specified
arguments. You can define the item exactly by --id, or search for it using
-p and/or -i.

It is important to understand that the keyring items are divided into several
types (see --type) and each contain several properties. Both the item type and
item properties can be inspected using a tool like Seahorse. Then you will know
what to query for.

Zero or more items may match your query. They will be printed out one item
a line, by default in the format:
ID [TAB] secret

You can also create a new keyring item using --set. In this case the arguments
-p and/or -i will be used as properties of the new item.

When a new keyring item is created, its ID is printed out on the output.`

const examples = `$ gkeyring --id 12
Get keyring item with ID 12 in default keyring.

$ gkeyring -p account_name=my@jabber.org -i gajim=1 -1
Search for keyring item with property 'account_name' with value 'my@jabber.org'
and property 'gajim' with integer value '1'. Output only the secret(s).

$ gkeyring --type network -p server=my.com,protocol=ftp --output user,secret
Search for network keyring item with 'server' and 'protocol' properties. Output
property 'user' followed by item's secret.

$ gkeyring --set --name 'foo' -p bar=baz --keyring login
Create a new item in keyring 'login' with name 'foo' and property 'bar'.

$ gkeyring --delete --id 12
Delete a keyring item with ID 12.`

// options holds the raw flag values of one invocation.
type options struct {
	itemType   itemTypeValue
	keyring    string
	id         uint32
	params     string
	paramsInt  string
	output     string
	noNewline  bool
	secretOnly bool
	set        bool
	del        bool
	name       string
	password   string
	configFile string
	debug      bool
}

// itemTypeValue is a pflag.Value accepting only known item types.
type itemTypeValue models.ItemType

func (v *itemTypeValue) String() string { return string(*v) }
func (v *itemTypeValue) Type() string   { return "type" }

func (v *itemTypeValue) Set(s string) error {
	t, err := models.ParseItemType(s)
	if err != nil {
		return err
	}
	*v = itemTypeValue(t)
	return nil
}

// newRootCommand builds the gkeyring command. Flag defaults come from cfg;
// run is called with the parsed options.
func newRootCommand(cfg *config.Config, run func(cmd *cobra.Command, o *options) error) *cobra.Command {
	o := &options{itemType: itemTypeValue(cfg.ItemType)}

	cmd := &cobra.Command{
		Use:           "gkeyring [options]",
		Short:         "Shell access to the desktop keyring",
		Long:          description,
		Example:       examples,
		Version:       buildinfo.String(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, o)
		},
	}
	cmd.SetVersionTemplate("gkeyring {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Message: err.Error()}
	})

	f := cmd.Flags()
	f.SortFlags = false
	f.VarP(&o.itemType, "type", "t", "type of keyring item: generic, network or note")
	f.StringVarP(&o.keyring, "keyring", "k", cfg.Keyring, "keyring name (default: default keyring)")
	f.Uint32Var(&o.id, "id", 0, "key ID")
	f.StringVarP(&o.params, "params", "p", "", "params and values of keyring item, e.g. user, server, protocol, etc. (PARAM1=VALUE1,PARAM2=VALUE2)")
	f.StringVarP(&o.paramsInt, "params-int", "i", "", "same as -p, but values are treated as integers, not strings")
	f.StringVarP(&o.output, "output", "o", cfg.Output, "comma-separated list of columns to be printed on the output. Column name may include any name of item's property or keywords 'id', 'secret' and 'name'. Columns will be separated by tabs.")
	f.BoolVarP(&o.noNewline, "no-newline", "l", false, "don't output the trailing newline")
	f.BoolVarP(&o.secretOnly, "secret-only", "1", false, "same as '--output secret --no-newline'")
	f.BoolVarP(&o.set, "set", "s", false, "create a new item in the keyring instead of querying")
	f.StringVarP(&o.name, "name", "n", "", "keyring item descriptive name (mandatory if --set)")
	f.StringVarP(&o.password, "password", "w", "", "keyring item password")
	f.BoolVarP(&o.del, "delete", "d", false, "delete the item in the keyring identified by '--id'")
	f.StringVarP(&o.configFile, "config", "c", "", "config file (JSON or YAML)")
	f.BoolVar(&o.debug, "debug", false, "write debug logs to stderr")

	return cmd
}
