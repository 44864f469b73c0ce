package menu

// Default returns the landing page navigation: Contact, Projects, Skills and
// Education, in button order.
func Default() []Menu {
	return []Menu{
		{
			Name: "Contact",
			Items: []Item{
				{Label: "Mail", URL: "mailto:hrdodoro@gmail.com"},
				{Label: "Instagram", URL: "https://instagram.com/dorijanhabek"},
				{Label: "Facebook", URL: "https://facebook.com/dorijanhabek"},
				{Label: "GitHub", URL: "https://github.com/dorijanhabek"},
			},
		},
		{
			Name:    "Projects",
			Columns: 2,
			Items: labels(
				"Prometheus & Grafana", "Game Server Infrastructure", "DFS Server", "Storage Servers",
				"Zabbix Monitoring", "NFS Servers", "Web Servers", "Web Hosting Services", "WordPress Sites",
				"Proxy Servers", "Database Servers", "Microsoft Exchange Migration", "Microsoft Entra ID Implementation",
				"Microsoft Defender Security", "Hacker Attack Remediation", "Infrastructure Hardening", "DHCP & DNS Management",
				"Group Policy Management", "Data Migration Projects", "Team Mentoring", "Process Improvement",
				"Home Lab Research", "Security Solutions", "Technical Documentation", "Presales Support",
				"Red Teaming", "Custom Linux Distribution", "VMWare infrastructure configuration",
			),
		},
		{
			Name: "Skills",
			Sections: []Section{
				{
					Title: "IT Infrastructure & System Administration",
					Items: []string{
						"Windows Infrastructure and System Administration",
						"Linux Server Management and Configuration",
						"Backup and disaster recovery management",
						"L1, L2, and L3 Technical Support",
						"System hardening and security implementation",
						"Data and service migration projects",
						"Cross-team collaboration and communication",
						"Mentoring and training new employees",
						"Maintaining a personal lab for testing and automation",
					},
				},
				{
					Title: "Microsoft Technologies",
					Items: []string{
						"Microsoft Exchange Administration", "Microsoft Entra ID", "Microsoft Azure",
						"Microsoft Defender", "Office 365 Administration", "Windows Server",
						"Active Directory", "Group Policy Management",
					},
				},
				{
					Title: "IT Tools & Platforms",
					Items: []string{
						"Jira", "Confluence", "Atlassian Suite", "Prometheus", "Grafana", "Docker", "Proxmox",
						"Git", "GitHub", "Zabbix", "Plesk", "Bash Scripting", "PowerShell Scripting",
						"Tailscale Management", "Python", "Unity", "Ubiquiti",
					},
				},
				{
					Title: "Storage & Networking",
					Items: []string{
						"Storage Management", "Distributed File System", "Dynamic Host Configuration Protocol",
						"DNS Management", "NFS", "Network Infrastructure Troubleshooting",
					},
				},
				{
					Title: "Web Technologies & Databases",
					Items: []string{
						"Nginx Proxy", "Apache2 Web Server", "WordPress", "MySQL", "MariaDB", "PostgreSQL",
						"HTML", "CSS", "JavaScript", "Node.js", "Lua",
					},
				},
				{
					Title: "Design Tools and Skills",
					Items: []string{
						"Adobe Premiere Pro", "Adobe Photoshop", "Adobe Illustrator",
						"Adobe After Effects", "FL Studio", "Ableton Live 11", "Blender",
					},
				},
			},
		},
		{
			Name: "Education",
			Items: []Item{
				{Label: "Prva Gimnazija Varaždin", URL: "https://gimnazija-varazdin.skole.hr/"},
				{Label: "Faculty of Organisation and Informatics", URL: "https://www.foi.unizg.hr/hr"},
			},
		},
	}
}

func labels(names ...string) []Item {
	items := make([]Item, len(names))
	for i, n := range names {
		items[i] = Item{Label: n}
	}
	return items
}
