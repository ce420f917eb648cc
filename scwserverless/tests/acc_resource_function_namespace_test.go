package tests

import (
	"testing"

	"github.com/hashicorp/terraform-plugin-testing/config"
	"github.com/hashicorp/terraform-plugin-testing/helper/resource"
)

const functionNamespaceFile = "../../examples/functionnamespace/main.tf"

func TestAccFunctionNamespace(t *testing.T) {
	name := generateRandomName("acc-fn-ns")
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
				ConfigFile:      config.StaticFile(functionNamespaceFile),
				ConfigVariables: vars,
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttr("scwserverless_function_namespace.test", "name", name),
					resource.TestCheckResourceAttr("scwserverless_function_namespace.test", "status", "ready"),
					resource.TestCheckResourceAttrSet("scwserverless_function_namespace.test", "registry_endpoint"),
					resource.TestCheckResourceAttr("scwserverless_function.test", "name", name),
					resource.TestCheckResourceAttr("scwserverless_function.test", "runtime", "go121"),
					resource.TestCheckResourceAttrSet("scwserverless_function.test", "domain_name"),
					resource.TestCheckResourceAttr("data.scwserverless_function_namespace.test", "name", name),
				),
				ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
			},
			{
				ResourceName:             "scwserverless_function_namespace.test",
				ConfigFile:               config.StaticFile(functionNamespaceFile),
				ConfigVariables:          vars,
				ImportState:              true,
				ImportStateVerifyIgnore:  []string{"secret_environment_variables", "timeouts"},
				ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
			},
			{
				ConfigFile:               config.StaticFile(functionNamespaceFile),
				ConfigVariables:          vars,
				Destroy:                  true,
				ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
			},
		},
	})
}
