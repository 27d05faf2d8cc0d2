// Package config reads grove descriptor sets from files.
//
// Three formats are understood. XML uses the classic bean schema:
//
//	<beans>
//	  <bean id="rex" class="petshop.Dog">
//	    <property name="name" value="Rex"/>
//	  </bean>
//	  <bean id="alice" class="petshop.Person">
//	    <property name="pet" ref="rex"/>
//	  </bean>
//	</beans>
//
// HCL uses labelled blocks, and may read variables through env:
//
//	bean "rex" {
//	  class = "petshop.Dog"
//	  property "name" { value = "Rex" }
//	  property "home" { value = "${env.HOME}/kennel" }
//	}
//
// YAML mirrors the same structure under a top-level beans list.
//
// Loaders only translate documents; structural checks (unique ids, one of
// value or ref per property, resolvable refs) are left to grove.Validate and
// grove.New.
package config
