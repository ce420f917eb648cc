package tests

import (
	"testing"

	"github.com/hashicorp/terraform-plugin-testing/config"
	"github.com/hashicorp/terraform-plugin-testing/helper/resource"
)

const containerNamespaceFile = "../../examples/container/main.tf"

func TestAccContainer(t *testing.T) {
	name := generateRandomName("acc-cn")
	vars := config.Variables{
		"name": config.StringVariable(name),
	}
	for k, v := range providerCfgVars {
		vars[k] = v
	}
	resource.Test(t, resource.TestCase{
		PreCheck: func() { testAccPreCheck(t) },
		Steps: []resource.TestStep{
			{
				ConfigFile:      config.StaticFile(containerNamespaceFile),
				ConfigVariables: vars,
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttr("scwserverless_container_namespace.test", "name", name),
					resource.TestCheckResourceAttr("scwserverless_container_namespace.test", "status", "ready"),
					resource.TestCheckResourceAttr("scwserverless_container.test", "name", name),
					resource.TestCheckResourceAttr("scwserverless_container.test", "port", "8080"),
					resource.TestCheckResourceAttrSet("scwserverless_container.test", "domain_name"),
					resource.TestCheckResourceAttr("data.scwserverless_container.test", "name", name),
					resource.TestCheckResourceAttrSet("data.scwserverless_container_registry.test", "endpoint"),
				),
				ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
			},
			{
				ConfigFile:               config.StaticFile(containerNamespaceFile),
				ConfigVariables:          vars,
				Destroy:                  true,
				ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
			},
		},
	})
}
