package promptrelay

import (
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
	"github.com/leonyu5566/sp500-ai-advisor/pkg/relay"
)

// Help generates the help output listing every setting the binary reads.
func Help() string {
	rtGroup, _ := settings.GroupFromComponent(runhttp.NewComponent())
	lambdaGroup, _ := settings.GroupFromComponent(&LambdaComponent{})
	relayGroup, _ := settings.GroupFromComponent(relay.NewComponent())
	return settings.ExampleEnvGroups([]settings.Group{
		relayGroup,
		&settings.SettingGroup{
			NameValue:   settingsPrefix,
			GroupValues: []settings.Group{rtGroup, lambdaGroup},
		},
	})
}
